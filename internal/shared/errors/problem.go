// Package errors provides RFC 7807 Problem Details for HTTP APIs.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Reason is a machine-readable rejection code, present on
	// invalid-argument problems only.
	Reason string `json:"reason,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithReason returns a copy carrying the machine-readable rejection code.
func (p ProblemDetail) WithReason(reason string) ProblemDetail {
	p.Reason = reason
	return p
}

// Common problem types as URI references.
const (
	TypeInvalidArgument = "/problems/invalid-argument"
	TypeBadRequest      = "/problems/bad-request"
	TypeNotFound        = "/problems/not-found"
	TypeInternal        = "/problems/internal-error"
)

// Pre-defined problem templates for common scenarios.
var (
	// ErrInvalidArgument indicates the request was well formed but rejected
	// by a business rule. The Reason field identifies which one.
	ErrInvalidArgument = ProblemDetail{
		Type:   TypeInvalidArgument,
		Title:  "Invalid Argument",
		Status: http.StatusBadRequest,
	}

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	// ErrInternal indicates an unexpected server error.
	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}
)

// NewInvalidArgumentProblem creates an invalid-argument problem carrying a
// rejection reason code.
func NewInvalidArgumentProblem(reason, detail string) ProblemDetail {
	return ErrInvalidArgument.WithReason(reason).WithDetail(detail)
}
