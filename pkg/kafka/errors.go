package kafka

import (
	"errors"
	"fmt"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrConsumerClosed = errors.New("kafka consumer is closed")
	ErrInvalidMessage = errors.New("invalid message")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeTransient covers failures worth retrying (network,
	// provider hiccups).
	ErrorTypeTransient
	// ErrorTypePermanent covers failures retrying cannot fix (bad
	// payload, unknown event type); they go straight to the DLQ.
	ErrorTypePermanent
)

type HandlerError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *HandlerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

func NewTransientError(message string, err error) *HandlerError {
	return &HandlerError{Type: ErrorTypeTransient, Message: message, Err: err}
}

func NewPermanentError(message string, err error) *HandlerError {
	return &HandlerError{Type: ErrorTypePermanent, Message: message, Err: err}
}

// ShouldRetry reports whether a failed delivery attempt should be
// retried. Permanent errors and exhausted budgets go to the DLQ.
func ShouldRetry(err error, retries, maxRetries int) bool {
	if err == nil || retries >= maxRetries {
		return false
	}
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.Type == ErrorTypePermanent {
		return false
	}
	return true
}
