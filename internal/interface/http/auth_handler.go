package handlers

import (
	"errors"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/apperror"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

var authEvents = expvar.NewMap("auth_events")

type AuthHandler struct {
	Repos  repository.Manager
	Hasher application.PasswordHasher
	Tokens application.TokenIssuer
	Logger *logrus.Logger
}

func NewAuthHandler(repos repository.Manager, hasher application.PasswordHasher, tokens application.TokenIssuer, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Repos: repos, Hasher: hasher, Tokens: tokens, Logger: logger}
}

func (h *AuthHandler) users(c *gin.Context) *application.UserService {
	return application.NewUserService(h.Repos.Users(middleware.Session(c)), h.Hasher, h.Tokens, h.Logger)
}

type registerRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,pwd"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tok, err := h.users(c).Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			authEvents.Add("register_conflict", 1)
		}
		writeError(c, h.Logger, err)
		return
	}
	authEvents.Add("register_ok", 1)
	response.JSON(c, http.StatusOK, tokenResponse{AccessToken: tok.Token, TokenType: tok.Type})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tok, err := h.users(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			authEvents.Add("login_failed", 1)
		}
		writeError(c, h.Logger, err)
		return
	}
	authEvents.Add("login_ok", 1)
	response.JSON(c, http.StatusOK, tokenResponse{AccessToken: tok.Token, TokenType: tok.Type})
}
