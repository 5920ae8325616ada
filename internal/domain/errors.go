package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrExternalFailure = errors.New("external integration failed")
	ErrPersistence     = errors.New("persistence failed")
)

// ScanError reports a failed barcode scan. It matches ErrExternalFailure
// under errors.Is.
type ScanError struct {
	Err error
}

func (e *ScanError) Error() string {
	return "barcode scan failed: " + e.Err.Error()
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrExternalFailure, e.Err}
}
