package middleware

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/dbx"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

const ctxDBSessionKey = "dbSession"

// DBSession reserves one pooled connection for the lifetime of the request and
// returns it to the pool on every exit path. With a nil db it does nothing.
func DBSession(db *sql.DB, logger *logrus.Logger) gin.HandlerFunc {
	if db == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		conn, err := db.Conn(c.Request.Context())
		if err != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("acquire db connection failed")
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.WithError(err).Warn("release db connection failed")
			}
		}()
		c.Set(ctxDBSessionKey, conn)
		c.Next()
	}
}

// Session returns the request's connection, or nil when DBSession did not run.
func Session(c *gin.Context) dbx.DBTX {
	v, ok := c.Get(ctxDBSessionKey)
	if !ok {
		return nil
	}
	conn, ok := v.(*sql.Conn)
	if !ok || conn == nil {
		return nil
	}
	return conn
}
