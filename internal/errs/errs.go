// Package errs holds the error kinds the repository layer raises itself.
// Everything else coming out of the store is passed through untouched.
package errs

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows which HTTP status it maps to.
type HTTPError struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError carrying the same status, so callers can write
// errors.Is(err, errs.ErrNotFound) without caring about the message.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Status == e.Status
}

var ErrNotFound = &HTTPError{
	Status:  http.StatusNotFound,
	Title:   http.StatusText(http.StatusNotFound),
	Message: "not found",
}

// NotFound reports that no resource exists under id.
func NotFound(resource string, id fmt.Stringer) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Title:   http.StatusText(http.StatusNotFound),
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}
