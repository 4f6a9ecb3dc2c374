package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
)

type TodoModule struct {
	Handler *handlers.TodoHandler
	Auth    gin.HandlerFunc
	Session gin.HandlerFunc
}

func NewTodoModule(h *handlers.TodoHandler, auth, session gin.HandlerFunc) *TodoModule {
	return &TodoModule{Handler: h, Auth: auth, Session: session}
}

// Register mounts the todo CRUD endpoints. Authentication runs before a
// database connection is reserved.
func (m *TodoModule) Register(rg *gin.RouterGroup) {
	todos := rg.Group("/todos", m.Auth, m.Session)
	{
		todos.GET("/", m.Handler.List)
		todos.POST("/", m.Handler.Create)
		todos.GET("/:id", m.Handler.Get)
		todos.PUT("/:id", m.Handler.Update)
		todos.DELETE("/:id", m.Handler.Delete)
	}
}
