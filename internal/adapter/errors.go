package adapter

import (
	"errors"
	"fmt"
)

// ErrAnswerServiceUnreachable is returned when the answer service cannot be
// reached at all (connection refused, timeout) even after the single retry.
var ErrAnswerServiceUnreachable = errors.New("answer service unreachable")

// UpstreamError is returned when the answer service responds with a non-2xx
// status. Detail carries the remote service's own message when it provided
// one, so it can be surfaced to the caller verbatim.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("answer service returned %d: %s", e.StatusCode, e.Detail)
}
