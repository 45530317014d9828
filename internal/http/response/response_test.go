package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFound("the user with id 1 not found"), http.StatusNotFound},
		{"bad request", apperr.BadRequest("nope"), http.StatusBadRequest},
		{"validation", apperr.Validation(errors.New("x"), "invalid"), http.StatusBadRequest},
		{"conflict", apperr.Conflict("dup"), http.StatusBadRequest},
		{"precondition", apperr.Precondition("posts", nil, "user delete error"), http.StatusPreconditionFailed},
		{"wrapped", fmt.Errorf("op: %w", apperr.NotFound("x")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("typed error keeps its message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		WriteError(w, r, fmt.Errorf("services.Get: %w", apperr.NotFound("the post with id 7 not found")), "could not read post")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"the post with id 7 not found"}`, w.Body.String())
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		WriteError(w, r, errors.New("connection refused"), "could not read post")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"could not read post"}`, w.Body.String())
	})
}

func TestValidationError(t *testing.T) {
	type request struct {
		UserID string `validate:"required"`
		Title  string `validate:"min=1"`
		Limit  int    `validate:"gte=0"`
	}
	err := validator.New().Struct(request{Limit: -1})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field UserID is a required field, field Title must not be empty, field Limit must not be negative",
		resp.Error)
}
