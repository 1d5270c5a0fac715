package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResponseTooLarge is returned when a 2xx body is larger than the client
// accepts. The body is not parsed.
var ErrResponseTooLarge = errors.New("response too large")

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("failed to parse response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError is returned when the request could not be built, sent, or
// its body could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("failed to %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var api *APIError
	return errors.As(err, &api) && api.StatusCode == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var api *APIError
	return errors.As(err, &api) &&
		(api.StatusCode == http.StatusUnauthorized || api.StatusCode == http.StatusForbidden)
}
