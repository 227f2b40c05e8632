package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
	"github.com/yukikurage/client-task-api/internal/services"
	"github.com/yukikurage/client-task-api/internal/testutil"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrEmailTaken, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{services.ErrNoFieldsProvided, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{services.ErrTitleRequired, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, apierrors.ErrCodeInvalidCredentials},
		{services.ErrTokenExpired, http.StatusUnauthorized, apierrors.ErrCodeUnauthorized},
		{services.ErrNotCommentAuthor, http.StatusForbidden, apierrors.ErrCodeForbidden},
		{services.ErrClientNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
		{fmt.Errorf("wrapped: %w", services.ErrTaskNotFound), http.StatusNotFound, apierrors.ErrCodeNotFound},
		{services.ErrTaskOrderConflict, http.StatusConflict, apierrors.ErrCodeConflict},
		{errors.New("connection reset"), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, testutil.Logger(), tt.err)

			require.Equal(t, tt.status, w.Code)
			var body apierrors.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespondError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, testutil.Logger(), errors.New("dial tcp 10.0.0.1:3306: refused"))

	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
