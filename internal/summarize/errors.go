package summarize

import "fmt"

// ErrNetwork indicates a transport-level failure reaching the backend.
// Retryable from the caller's point of view.
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("summarization backend unreachable: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrBackend indicates the backend was reachable but rejected the request.
// Detail carries the backend-supplied message when the error body was
// parseable, else a generic message keyed by status code.
type ErrBackend struct {
	Status int
	Detail string
}

func (e *ErrBackend) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned HTTP %d", e.Status)
}

// ErrInvalidSummary indicates the backend response did not conform to the
// HierarchicalSummary schema.
type ErrInvalidSummary struct {
	Err error
}

func (e *ErrInvalidSummary) Error() string {
	return fmt.Sprintf("invalid summary response: %v", e.Err)
}

func (e *ErrInvalidSummary) Unwrap() error { return e.Err }
