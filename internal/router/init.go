package router

import (
	"github.com/oksasatya/go-todo-api/internal/container"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/internal/router/modules"
)

// InitModules wires handlers from the container and registers every module.
func InitModules(r *Registry, ctr *container.Container) {
	session := middleware.DBSession(ctr.DB, ctr.Logger)

	authHandler := handlers.NewAuthHandler(ctr.Repos, ctr.Hasher, ctr.JWT, ctr.Logger)
	r.Add(modules.NewAuthModule(authHandler, session))

	todoHandler := handlers.NewTodoHandler(ctr.Repos, ctr.Logger)
	r.Add(modules.NewTodoModule(todoHandler, middleware.BearerAuth(ctr.JWT, ctr.Logger), session))

	if ctr.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(ctr.DB, ctr.Logger)))
}
