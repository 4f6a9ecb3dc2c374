// Package memory is a process-local storage backend with the same ownership rules as the
// postgres repositories. It backs DB_DRIVER=memory and the end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/go-todo-api/internal/dbx"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type Store struct {
	mu     sync.RWMutex
	users  map[string]entity.User // by id
	emails map[string]string      // email -> id
	todos  map[int64]entity.Todo
	nextID int64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:  make(map[string]entity.User),
		emails: make(map[string]string),
		todos:  make(map[int64]entity.Todo),
		now:    time.Now,
	}
}

// Users and Todos ignore the session; the store has a single shared state.
func (s *Store) Users(_ dbx.DBTX) repository.UserRepository { return (*userRepo)(s) }
func (s *Store) Todos(_ dbx.DBTX) repository.TodoRepository { return (*todoRepo)(s) }

var _ repository.Manager = (*Store)(nil)

type userRepo Store

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	if _, ok := r.users[u.ID]; ok {
		return repository.ErrUserIDTaken
	}
	now := r.now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.ID] = *u
	r.emails[u.Email] = u.ID
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	id, ok := r.emails[email]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return r.GetByID(ctx, id)
}

type todoRepo Store

func (r *todoRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Todo, 0)
	for _, t := range r.todos {
		if t.UserID == ownerID {
			out = append(out, cloneTodo(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *todoRepo) Create(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now().UTC()
	t.ID = r.nextID
	t.CreatedAt, t.UpdatedAt = now, now
	r.todos[t.ID] = cloneTodo(*t)
	return nil
}

func (r *todoRepo) GetByOwner(_ context.Context, ownerID string, id int64) (*entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != ownerID {
		return nil, repository.ErrTodoNotFound
	}
	out := cloneTodo(t)
	return &out, nil
}

func (r *todoRepo) UpdateByOwner(_ context.Context, ownerID string, id int64, patch entity.TodoPatch) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != ownerID {
		return nil, repository.ErrTodoNotFound
	}
	if !patch.Empty() {
		patch.Apply(&t)
		t.UpdatedAt = r.now().UTC()
		r.todos[id] = t
	}
	out := cloneTodo(t)
	return &out, nil
}

func (r *todoRepo) DeleteByOwner(_ context.Context, ownerID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != ownerID {
		return repository.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

// cloneTodo copies the description so callers never share a pointer with the store.
func cloneTodo(t entity.Todo) entity.Todo {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}
