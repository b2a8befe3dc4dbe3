package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recovers from panic", func(t *testing.T) {
		logger, logs := newObservedLogger()

		r := gin.New()
		r.Use(Recovery(logger))
		r.GET("/panic", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t,
			`{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
			w.Body.String())
		assert.Len(t, logs.FilterLevelExact(zap.ErrorLevel).All(), 1)
	})

	t.Run("passes through normal requests", func(t *testing.T) {
		logger, _ := newObservedLogger()

		r := gin.New()
		r.Use(Recovery(logger))
		r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sets headers on normal request", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS())
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("short-circuits preflight", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS())
		r.POST("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ok", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
