package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"electricity-forecast/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler_RecoversPanicsIntoErrorEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		panicValue  interface{}
		wantMessage string
	}{
		{name: "string panic", panicValue: "series is empty", wantMessage: "series is empty"},
		{name: "error panic", panicValue: errors.New("broken payload"), wantMessage: "broken payload"},
		{name: "other panic", panicValue: 42, wantMessage: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/boom", func(c *gin.Context) {
				panic(tt.panicValue)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusInternalServerError, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
		})
	}
}
