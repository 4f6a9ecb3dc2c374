package middleware

import (
	"expvar"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/pkg/helpers"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// authFailures counts rejected bearer tokens by reason; served on /api/debug/vars.
var authFailures = expvar.NewMap("auth_failures")

type TokenVerifier interface {
	Verify(token string) (*helpers.Claims, error)
}

// BearerAuth validates the "Authorization: Bearer <token>" header and injects the user id
// into the context. Every rejection is a 401 with the same body; the reason is only logged.
func BearerAuth(tokens TokenVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			authFailures.Add("missing", 1)
			unauthorized(c, "Not authenticated")
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			reason := helpers.TokenFailureReason(err)
			authFailures.Add(reason, 1)
			logger.WithFields(logrus.Fields{
				"reason":     reason,
				"request_id": c.GetString("request_id"),
			}).Debug("bearer token rejected")
			unauthorized(c, "Could not validate credentials")
			return
		}
		c.Set(CtxUserIDKey, claims.Subject)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, http.StatusUnauthorized, detail, nil)
}

// UserID returns the authenticated user id, or "" on public routes.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
