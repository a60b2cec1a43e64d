package services

import (
	"errors"
	"net/http"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrInvalidFile       = errors.New("invalid upload file")
	ErrUploaderMissing   = errors.New("file uploader not configured")
)

// ServiceError is a typed error with an HTTP status code. Message is safe
// to show to the caller.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ResponseFor maps err to a status and client message. Errors without a
// ServiceError in their chain are a 500 with fallback as the message.
func ResponseFor(err error, fallback string) (int, string) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.StatusCode, se.Message
	}
	return http.StatusInternalServerError, fallback
}
