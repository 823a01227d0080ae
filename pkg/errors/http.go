package errors

import "fmt"

// HTTPError carries an HTTP status alongside a user-facing message. Delivery
// layers translate domain errors into HTTPErrors; everything else is treated
// as an internal error.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
