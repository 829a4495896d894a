package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSimpleRateLimit_BlocksAboveLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", SimpleRateLimit(2, time.Minute), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do() != 200 || do() != 200 {
		t.Fatal("expected first two requests to pass")
	}
	if do() != http.StatusTooManyRequests {
		t.Fatal("expected third request to be blocked")
	}
}
