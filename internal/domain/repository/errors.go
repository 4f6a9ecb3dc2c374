package repository

import "github.com/oksasatya/go-todo-api/internal/domain/apperror"

var (
	ErrUserNotFound = apperror.New(apperror.ErrNotFound, "User not found")
	ErrTodoNotFound = apperror.New(apperror.ErrNotFound, "Todo not found")
	ErrEmailTaken   = apperror.New(apperror.ErrConflict, "Email already registered")
	// ErrUserIDTaken is returned when a different email derives an id that is already in use.
	ErrUserIDTaken = apperror.New(apperror.ErrConflict, "An account with this username already exists")
)
