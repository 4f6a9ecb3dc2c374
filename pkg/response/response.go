package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Detail    string      `json:"detail"`
	Errors    interface{} `json:"errors,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// JSON writes a successful payload as-is.
func JSON(ctx *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// Error aborts the request and writes an ErrorBody.
func Error(ctx *gin.Context, status int, detail string, errs interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, ErrorBody{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString("request_id"),
		Detail:    detail,
		Errors:    errs,
	})
}
