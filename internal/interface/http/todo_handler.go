package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

type TodoHandler struct {
	Repos  repository.Manager
	Logger *logrus.Logger
}

func NewTodoHandler(repos repository.Manager, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Repos: repos, Logger: logger}
}

func (h *TodoHandler) todos(c *gin.Context) *application.TodoService {
	return application.NewTodoService(h.Repos.Todos(middleware.Session(c)), h.Logger)
}

type createTodoRequest struct {
	Title       string  `json:"title" binding:"required,title"`
	Description *string `json:"description"`
}

func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request", map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

// List GET /api/todos/
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todos(c).List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, todos)
}

// Create POST /api/todos/
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	todo, err := h.todos(c).Create(c.Request.Context(), middleware.UserID(c), entity.NewTodo{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, todo)
}

// Get GET /api/todos/:id
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	todo, err := h.todos(c).Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, todo)
}

// Update PUT /api/todos/:id; omitted fields are left unchanged.
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	var patch entity.TodoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeBindError(c, err)
		return
	}
	todo, err := h.todos(c).Update(c.Request.Context(), middleware.UserID(c), id, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, todo)
}

// Delete DELETE /api/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	if err := h.todos(c).Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: "Todo deleted successfully"})
}
