package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"study_tracker_backend/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticResolver map[string]string

func (r staticResolver) Resolve(token string) (string, error) {
	if id, ok := r[token]; ok {
		return id, nil
	}
	return "", errors.New("unknown token")
}

func TestProfileMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ProfileMiddleware(staticResolver{"good": "profile-1"}))
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, util.GetProfileID(c)) })

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", util.DefaultProfile},
		{"valid token", "Bearer good", "profile-1"},
		{"invalid token", "Bearer bad", util.DefaultProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
