package forum

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnknownCategory = errors.New("unknown category")

// StatusError is returned when the forum answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error fetching from %s: %s", e.Endpoint, e.Status)
}

func newStatusError(endpoint string, resp *http.Response) *StatusError {
	status := http.StatusText(resp.StatusCode)
	if status == "" {
		status = resp.Status
	}
	return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: status}
}
