package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response. Resource names the endpoint that
// failed ("wallet", "balance", "chat"...), Status is the HTTP status code and
// Message is the backend's detail string when one was returned.
type Error struct {
	Resource string
	Status   int
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Resource, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Resource, e.Status)
}

// NotFound reports whether the failure was a 404 lookup miss.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsNotFound reports whether err wraps a 404 backend error. The wallet detail
// flow special-cases this to navigate back to the wallet list.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
