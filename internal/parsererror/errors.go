// Package parsererror defines the typed errors used at the file and storage
// edges of the application. Core extraction never returns errors; these
// types cover IO around it.
package parsererror

import "fmt"

// ParseError represents a failure to obtain or decode parser input.
type ParseError struct {
	Stage string // e.g. "read"
	Input string // file path or input description
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s failed for %s: %v", e.Stage, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StoreError represents a failure in the persistence layer (ledger or
// configuration store).
type StoreError struct {
	Op   string // e.g. "append", "load"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that a stored receipt matching the given criteria
// does not exist.
type NotFoundError struct {
	Criteria string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no stored receipt matches %s", e.Criteria)
}
