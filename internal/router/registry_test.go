package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingModule struct{ path string }

func (m pingModule) Register(rg *gin.RouterGroup) {
	rg.GET(m.path, func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestRegistry_MountsApiAndRootModules(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reg := NewRegistry(r)
	reg.Add(pingModule{path: "/ping"})
	reg.AddRoot(pingModule{path: "/live"})
	reg.RegisterAll()

	for path, want := range map[string]int{
		"/api/ping": http.StatusNoContent,
		"/live":     http.StatusNoContent,
		"/ping":     http.StatusNotFound,
		"/api/live": http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}
