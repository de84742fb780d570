// Package errors provides the error types surfaced by the harness.
//
// Each type has a constructor, an Error() method, and a type-checking
// helper built on errors.As so callers can distinguish the failure kind
// after wrapping. None of these errors are retried by the harness: a
// failed setup stage fails the whole test.
package errors

import (
	"errors"
	"fmt"
)

// TransportError indicates a failed HTTP exchange: either the request
// never completed (network error, Cause is set) or the server answered
// with a non-success status (StatusCode is set, Body holds the raw
// response payload for diagnosis).
type TransportError struct {
	Method     string
	Target     string
	StatusCode int
	Body       string
	Cause      error
}

func NewTransportError(method, target string, statusCode int, body string) *TransportError {
	return &TransportError{Method: method, Target: target, StatusCode: statusCode, Body: body}
}

func NewTransportFailure(method, target string, cause error) *TransportError {
	return &TransportError{Method: method, Target: target, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Target, e.Cause)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Target, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsTransportError checks if the error is a TransportError.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// ContractViolationError indicates the backend answered successfully but
// the response body does not match the shape the caller expected. Kept
// separate from TransportError so tests can tell a contract break from
// an unreachable backend.
type ContractViolationError struct {
	Target string
	Shape  string
	Cause  error
}

func NewContractViolationError(target, shape string, cause error) *ContractViolationError {
	return &ContractViolationError{Target: target, Shape: shape, Cause: cause}
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: response does not match %s: %v", e.Target, e.Shape, e.Cause)
}

func (e *ContractViolationError) Unwrap() error {
	return e.Cause
}

// IsContractViolationError checks if the error is a ContractViolationError.
func IsContractViolationError(err error) bool {
	var e *ContractViolationError
	return errors.As(err, &e)
}

// DatabaseError wraps any failure during direct query execution.
type DatabaseError struct {
	Cause error
}

func NewDatabaseError(cause error) *DatabaseError {
	return &DatabaseError{Cause: cause}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Cause)
}

func (e *DatabaseError) Unwrap() error {
	return e.Cause
}

// IsDatabaseError checks if the error is a DatabaseError.
func IsDatabaseError(err error) bool {
	var e *DatabaseError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a required lookup produced nothing,
// e.g. an unknown GraphQL operation document.
type ResourceNotFoundError struct {
	Kind string
	Name string
}

func NewResourceNotFoundError(kind, name string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, Name: name}
}

func NewOperationNotFoundError(name string) *ResourceNotFoundError {
	return NewResourceNotFoundError("graphql operation", name)
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// IsResourceNotFoundError checks if the error is a ResourceNotFoundError.
func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}
