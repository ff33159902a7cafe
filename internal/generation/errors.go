// Package generation is the boundary to the external generative AI service:
// it sends prompts, extracts the JSON plan from the raw response, and
// validates it into a typed domain.WorkoutPlan.
package generation

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure. The orchestrator's retry policy
// depends on the kind, so failures are never collapsed into a plain error.
type ErrorKind string

const (
	// KindConfiguration: missing or invalid credential. Fatal, never retried.
	KindConfiguration ErrorKind = "configuration"
	// KindUpstream: network, timeout, or service-side failure. Retried by the
	// caller a bounded number of times with backoff.
	KindUpstream ErrorKind = "upstream"
	// KindParse: the response could not be decoded into the expected JSON
	// schema. Retried once with a stricter re-prompt, then surfaced.
	KindParse ErrorKind = "parse"
	// KindConstraint: the decoded plan violates equipment or day-count
	// invariants. Surfaced, not retried automatically.
	KindConstraint ErrorKind = "constraint"
)

// Error is a typed generation failure. Raw carries the raw response text for
// diagnostics on parse failures; it is logged and archived, never returned to
// HTTP clients.
type Error struct {
	Kind ErrorKind
	Msg  string
	Raw  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s error: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("generation %s error: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a generation Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind == kind
	}
	return false
}

func configurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Msg: msg}
}

func upstreamError(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func parseError(msg, raw string, err error) *Error {
	return &Error{Kind: KindParse, Msg: msg, Raw: raw, Err: err}
}

func constraintError(msg string) *Error {
	return &Error{Kind: KindConstraint, Msg: msg}
}
