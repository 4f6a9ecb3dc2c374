package postgres

import (
	"database/sql"

	"github.com/oksasatya/go-todo-api/internal/dbx"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// Manager hands out repositories bound to a request session, or to the shared DB when none is given.
type Manager struct {
	db *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) session(db dbx.DBTX) dbx.DBTX {
	if db == nil {
		return m.db
	}
	return db
}

func (m *Manager) Users(db dbx.DBTX) repository.UserRepository {
	return NewUserRepository(m.session(db))
}

func (m *Manager) Todos(db dbx.DBTX) repository.TodoRepository {
	return NewTodoRepository(m.session(db))
}

var _ repository.Manager = (*Manager)(nil)
