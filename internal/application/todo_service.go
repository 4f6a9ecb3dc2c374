package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/apperror"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
)

var (
	ErrNoOwner       = apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	ErrTitleRequired = apperror.New(apperror.ErrValidation, "title must not be empty")
	ErrTitleTooLong  = apperror.New(apperror.ErrValidation, "title must be at most 255 characters")
)

const maxTitleLen = 255

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// TodoService exposes todo CRUD for a single owner at a time.
type TodoService struct {
	Repo   repo.TodoRepository
	Logger *logrus.Logger
}

func NewTodoService(repo repo.TodoRepository, logger *logrus.Logger) *TodoService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TodoService{Repo: repo, Logger: logger}
}

func (s *TodoService) List(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	todos, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, ownerID string, in entity.NewTodo) (*entity.Todo, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	if err := checkTitle(in.Title); err != nil {
		return nil, err
	}
	t := &entity.Todo{
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		UserID:      ownerID,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{"todo_id": t.ID, "user_id": ownerID}).Debug("todo created")
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, ownerID string, id int64) (*entity.Todo, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	return s.Repo.GetByOwner(ctx, ownerID, id)
}

// Update applies a partial update. A null field means "leave as is";
// a blank title is rejected.
func (s *TodoService) Update(ctx context.Context, ownerID string, id int64, patch entity.TodoPatch) (*entity.Todo, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	if patch.Title.Null {
		patch.Title = entity.Optional[string]{}
	}
	if patch.Description.Null {
		patch.Description = entity.Optional[string]{}
	}
	if patch.Completed.Null {
		patch.Completed = entity.Optional[bool]{}
	}
	if patch.Title.Present() {
		if err := checkTitle(patch.Title.Value); err != nil {
			return nil, err
		}
	}
	return s.Repo.UpdateByOwner(ctx, ownerID, id, patch)
}

func (s *TodoService) Delete(ctx context.Context, ownerID string, id int64) error {
	if ownerID == "" {
		return ErrNoOwner
	}
	if err := s.Repo.DeleteByOwner(ctx, ownerID, id); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"todo_id": id, "user_id": ownerID}).Debug("todo deleted")
	return nil
}
