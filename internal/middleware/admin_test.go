package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func adminRouter(token, tokenHash string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuth(token, tokenHash))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doGet(r *gin.Engine, authHeader string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAdminAuth_PlainToken(t *testing.T) {
	r := adminRouter("s3cret", "")

	assert.Equal(t, http.StatusOK, doGet(r, "Bearer s3cret"))
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer wrong"))
	assert.Equal(t, http.StatusUnauthorized, doGet(r, ""))
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "s3cret"))
}

func TestAdminAuth_BcryptHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)
	// The plain token is deliberately different; the hash decides.
	r := adminRouter("other", string(hash))

	assert.Equal(t, http.StatusOK, doGet(r, "Bearer s3cret"))
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer other"))
}

func TestAdminAuth_Unconfigured(t *testing.T) {
	r := adminRouter("", "")
	assert.Equal(t, http.StatusServiceUnavailable, doGet(r, "Bearer anything"))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(NewInMemoryRateLimiter(3, time.Minute)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doGet(r, ""))
	}
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, ""))
}
