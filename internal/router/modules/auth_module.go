package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Session gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, session gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Session: session}
}

// Register mounts the public auth endpoints.
func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth", m.Session)
	{
		auth.POST("/register", m.Handler.Register)
		auth.POST("/login", m.Handler.Login)
	}
}
