package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type registerBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var in registerBody
	return c.ShouldBindJSON(&in)
}

func TestToDetails(t *testing.T) {
	Init()

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "request body is required"}, ToDetails(bind(t, "")))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, "{")))
	assert.Equal(t, map[string]string{"email": "must be of type string"}, ToDetails(bind(t, `{"email": 5}`)))

	details := ToDetails(bind(t, `{"email":"nope"}`))
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "is required", details["password"])

	long := bytes.Repeat([]byte("x"), 129)
	details = ToDetails(bind(t, `{"email":"a@b.co","password":"`+string(long)+`"}`))
	assert.Equal(t, "must be at most 128 characters", details["password"])
}
