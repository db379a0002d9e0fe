package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("objective", "cannot be empty"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid transition maps to 409",
			err:        &services.InvalidTransitionError{From: "success", To: "running"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "configuration error maps to 503",
			err:        &orchestrator.ConfigurationError{Detail: "ANTHROPIC_API_KEY is not set"},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "dispatch error maps to 502",
			err:        &orchestrator.DispatchError{Err: errors.New("queue insert failed")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "not found maps to 404",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not cancellable maps to 409",
			err:        services.ErrNotCancellable,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already exists maps to 409",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestMapServiceErrorMessages(t *testing.T) {
	t.Run("configuration detail is user-visible", func(t *testing.T) {
		httpErr := mapServiceError(&orchestrator.ConfigurationError{Detail: "LLM credentials missing"})
		assert.Equal(t, "LLM credentials missing", httpErr.Message)
	})

	t.Run("dispatch cause is not leaked", func(t *testing.T) {
		httpErr := mapServiceError(&orchestrator.DispatchError{Err: errors.New("pq: connection refused")})
		assert.Equal(t, "control plane unavailable", httpErr.Message)
	})

	t.Run("unknown cause is not leaked", func(t *testing.T) {
		httpErr := mapServiceError(errors.New("pq: duplicate key"))
		assert.Equal(t, "internal server error", httpErr.Message)
	})
}
