package httpclients

import "fmt"

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	Upstream   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Upstream, e.StatusCode)
}
