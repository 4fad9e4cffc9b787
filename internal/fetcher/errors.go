package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrRequest wraps transport failures: DNS, refused connections, cancelled contexts.
	ErrRequest = errors.New("request user")
	// ErrDecode wraps a response body that is not a valid user document.
	ErrDecode = errors.New("decode user")
)

// StatusError reports a non-2xx response. The body of such a response is never decoded.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}
