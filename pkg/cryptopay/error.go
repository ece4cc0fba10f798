package cryptopay

import (
	"errors"
	"fmt"
)

// APIError is returned when Crypto Pay answers with {"ok": false}.
type APIError struct {
	Method     string
	StatusCode int
	Code       int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cryptopay: %s failed: %d - %s", e.Method, e.Code, e.describe())
}

func (e *APIError) describe() string {
	switch {
	case e.Name != "" && e.Message != "":
		return e.Name + ": " + e.Message
	case e.Name != "":
		return e.Name
	case e.Message != "":
		return e.Message
	default:
		return "unknown error"
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type envelopeError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *envelopeError) toAPIError(method string, statusCode int) *APIError {
	if e == nil {
		return &APIError{
			Method:     method,
			StatusCode: statusCode,
			Code:       statusCode,
			Message:    "response has ok=false without an error object",
		}
	}
	return &APIError{
		Method:     method,
		StatusCode: statusCode,
		Code:       e.Code,
		Name:       e.Name,
		Message:    e.Message,
	}
}
