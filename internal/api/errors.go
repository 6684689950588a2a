package api

import (
	"errors"
	"fmt"
)

// ErrNetworkUnavailable marks transport-level failures where no HTTP
// response was received. Match with errors.Is.
var ErrNetworkUnavailable = errors.New("network unavailable")

// RequestError is returned when the backend answers with a non-success
// status. Message holds the backend's detail text when one was sent.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: status %d", e.Status)
	}
	return fmt.Sprintf("request failed: status %d: %s", e.Status, e.Message)
}

// AsRequestError unwraps err into a *RequestError, if it is one.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
