package app_error

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// FieldError names the offending input field and what is wrong with it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Add(field string, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

type NotFoundError struct {
	Resource string
	Id       any
}

func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, Id: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.Id)
}

func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// StorageError wraps anything the database rejected. The message is passed through as is.
type StorageError struct {
	Err error
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{Err: err}
}

func (e *StorageError) Error() string {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "storage request timed out, the outcome is unknown"
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) HTTPStatus() int {
	return http.StatusInternalServerError
}

func Unauthenticated() error {
	return statusError{errors.New("Unauthenticated"), http.StatusUnauthorized}
}

func Forbidden() error {
	return statusError{errors.New("Unauthorized"), http.StatusForbidden}
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func StatusOf(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	response := Response{Success: false, Error: err.Error()}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		response.Error = "validation failed"
		response.Errors = validationErr.Fields
	}
	c.AbortWithStatusJSON(status, response)
}

func Abort(c *gin.Context, err error) {
	WithHTTPStatus(c, err, StatusOf(err))
}

func Respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}
