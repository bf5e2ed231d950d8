package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards the admin surface with a single shared bearer secret.
// When tokenHash (bcrypt) is set it wins over the plain token, so the
// secret itself never needs to appear in the environment.
func AdminAuth(token, tokenHash string) gin.HandlerFunc {
	configured := token != "" || tokenHash != ""

	return func(c *gin.Context) {
		if !configured {
			// Refuse everything rather than run an open admin API.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
			return
		}

		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || presented == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		if tokenHash != "" {
			if bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(presented)) != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
		} else if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}
