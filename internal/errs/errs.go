// Package errs defines the two failure kinds the upload API reports and how
// each one maps onto an HTTP status.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidBody    = "Invalid request body"
	MsgInternalServer = "Internal Server Error"
)

// ValidationError reports required fields that were absent or empty.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// DatabaseError wraps any failure while acquiring a connection or running a
// statement. Its detail is for the server log only.
type DatabaseError struct {
	Op  string
	Err error
}

func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return e.Op + ": database error"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for err. Anything that is not a
// ValidationError is treated as a server fault.
func Status(err error) int {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage is the only text about err that may reach a client.
func PublicMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return MsgMissingFields
	}
	return MsgInternalServer
}
