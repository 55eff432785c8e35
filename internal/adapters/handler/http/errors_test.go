package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "Validation error",
			err:      &domain.ValidationError{Field: "date", Reason: "is required"},
			wantCode: http.StatusBadRequest,
			wantBody: "validation failed on date",
		},
		{
			name:     "Corrupt stored ledger",
			err:      fmt.Errorf("repository: ledger for a@kanso.app: %w: jsonschema validation failed", domain.ErrCorruptLedger),
			wantCode: http.StatusInternalServerError,
			wantBody: "stored ledger could not be read",
		},
		{
			name:     "Missing ledger",
			err:      fmt.Errorf("wrapped: %w", domain.ErrLedgerNotFound),
			wantCode: http.StatusNotFound,
			wantBody: "resource not found",
		},
		{
			name:     "Unknown failure",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil)

			handleError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "jsonschema")
		})
	}
}
