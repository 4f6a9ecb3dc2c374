package repository

import "github.com/oksasatya/go-todo-api/internal/dbx"

// Manager builds repositories bound to a database session. A nil session means
// "use the manager's default handle".
type Manager interface {
	Users(db dbx.DBTX) UserRepository
	Todos(db dbx.DBTX) TodoRepository
}
