package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// TodoRepository scopes every operation to an owner. A todo that exists but belongs to
// someone else is reported exactly like one that does not exist (apperror.ErrNotFound).
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error)
	Create(ctx context.Context, t *entity.Todo) error
	GetByOwner(ctx context.Context, ownerID string, id int64) (*entity.Todo, error)
	UpdateByOwner(ctx context.Context, ownerID string, id int64, patch entity.TodoPatch) (*entity.Todo, error)
	DeleteByOwner(ctx context.Context, ownerID string, id int64) error
}
