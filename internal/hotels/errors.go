package hotels

import "fmt"

// ValidationError marks a client-caused failure. It is never retried and
// always maps to HTTP 400 at the API boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// The two validation failure categories the endpoint reports.
var (
	ErrMissingParams = &ValidationError{Message: "missing or invalid required parameters"}
	ErrUnknownCity   = &ValidationError{Message: "invalid city selected"}
)

// UpstreamError marks a failure of the hotel-search upstream. Status holds
// the upstream HTTP status when one was received, 0 when the failure was at
// the transport level or the response was undecodable.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream search failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream search returned status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
