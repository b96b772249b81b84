package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(corsConfig([]string{"http://localhost:5173"})))
	r.GET("/api/jobs/jobsall", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func preflight(r *gin.Engine, origin, headers string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/jobs/jobsall", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", headers)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSConfig_Preflight(t *testing.T) {
	r := newCORSRouter()

	t.Run("token headers are allowed", func(t *testing.T) {
		w := preflight(r, "http://localhost:5173", "authorization,accesstoken,idempotency-key")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		allowed := strings.Split(w.Header().Get("Access-Control-Allow-Headers"), ",")
		assert.Contains(t, allowed, "Authorization")
		assert.Contains(t, allowed, "Accesstoken")
		assert.Contains(t, allowed, "Idempotency-Key")
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		w := preflight(r, "http://evil.example", "authorization")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
