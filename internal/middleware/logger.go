package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs failed requests and recovers from panics with a clean
// JSON 500 instead of a dropped connection.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("level=error msg=panic recovered method=%s path=%s client_ip=%s latency=%s panic=%v stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), time.Since(start), recovered, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}

			status := c.Writer.Status()
			if status >= http.StatusInternalServerError || len(c.Errors) > 0 {
				log.Printf("level=error msg=request failed status=%d method=%s path=%s query=%s client_ip=%s latency=%s errors=%q",
					status, c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery,
					c.ClientIP(), time.Since(start), c.Errors.String())
			}
		}()

		c.Next()
	}
}
