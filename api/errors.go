package api

import (
	"errors"
	"strings"
)

// RemoteRequestFailedError is returned when the remote service answers with
// a non-success status.
type RemoteRequestFailedError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *RemoteRequestFailedError) Error() string {
	return "remote request failed: " + e.Status
}

// BodyText decodes the body as UTF-8, replacing invalid sequences.
func (e *RemoteRequestFailedError) BodyText() string {
	return strings.ToValidUTF8(string(e.Body), "�")
}

// AsRemoteRequestFailed unwraps err into a *RemoteRequestFailedError.
func AsRemoteRequestFailed(err error) (*RemoteRequestFailedError, bool) {
	var remoteErr *RemoteRequestFailedError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}
