package app_error

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewValidationError(FieldError{Field: "name", Message: "is required"})))
	assert.Equal(t, http.StatusNotFound, StatusOf(fmt.Errorf("loading: %w", NotFound("registration", 1))))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Unauthenticated()))
	assert.Equal(t, http.StatusForbidden, StatusOf(Forbidden()))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Storage(errors.New("connection refused"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestStorageKeepsMessageAndTimeouts(t *testing.T) {
	err := Storage(errors.New("duplicate key value violates unique constraint"))
	assert.Equal(t, "duplicate key value violates unique constraint", err.Error())
	assert.Same(t, err, Storage(err))
	assert.Nil(t, Storage(nil))

	timeout := Storage(fmt.Errorf("insert: %w", context.DeadlineExceeded))
	assert.Contains(t, timeout.Error(), "outcome is unknown")
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)
}

func TestAbortWritesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	validationErr := NewValidationError()
	validationErr.Add("transaction_id", "is required when a fee is due")
	Abort(c, validationErr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "validation failed", response.Error)
	assert.Equal(t, []FieldError{{Field: "transaction_id", Message: "is required when a fee is due"}}, response.Errors)
}
