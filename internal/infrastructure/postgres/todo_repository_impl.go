package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oksasatya/go-todo-api/internal/dbx"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

const todoColumns = `id, title, description, completed, user_id, created_at, updated_at`

// TodoRepository puts the owner id into every WHERE clause; rows of other users are never read.
type TodoRepository struct {
	db dbx.DBTX
}

func NewTodoRepository(db dbx.DBTX) *TodoRepository {
	return &TodoRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*entity.Todo, error) {
	t := &entity.Todo{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]entity.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO todos (title, description, completed, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.Completed, t.UserID)

	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) GetByOwner(ctx context.Context, ownerID string, id int64) (*entity.Todo, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTodoNotFound
		}
		return nil, fmt.Errorf("select todo: %w", err)
	}
	return t, nil
}

// UpdateByOwner writes only the columns the patch carries a value for. Null fields are ignored.
func (r *TodoRepository) UpdateByOwner(ctx context.Context, ownerID string, id int64, patch entity.TodoPatch) (*entity.Todo, error) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title.Present() {
		add("title", patch.Title.Value)
	}
	if patch.Description.Present() {
		add("description", patch.Description.Value)
	}
	if patch.Completed.Present() {
		add("completed", patch.Completed.Value)
	}
	if len(sets) == 0 {
		return r.GetByOwner(ctx, ownerID, id)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id, ownerID)

	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) DeleteByOwner(ctx context.Context, ownerID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n == 0 {
		return repository.ErrTodoNotFound
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
