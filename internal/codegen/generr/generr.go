// Package generr defines the fatal error kinds raised while generating
// signal blocks. Every error is an *Error carrying its Kind, so callers can
// match with errors.Is(err, generr.KindMarkerNotFound).
package generr

import (
	"fmt"
	"strconv"
)

// Kind classifies an Error. A Kind is itself an error so it can be used as
// an errors.Is target.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	KindMalformedSpec    Kind = "malformed event spec"
	KindUnrecognizedMode Kind = "unrecognized mode"
	KindMarkerNotFound   Kind = "marker not found"
	KindMarkerAmbiguous  Kind = "marker ambiguous"
	KindArtifactIO       Kind = "artifact i/o"
	KindOutputDrift      Kind = "output out of date"
)

// Error is a generation failure. Subject names the event row, mode selector,
// marker or artifact path the failure is about.
type Error struct {
	Kind    Kind
	Subject string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Subject != "" {
		msg += " " + strconv.Quote(e.Subject)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a bare Kind target.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func ErrMalformedSpec(row, detail string) *Error {
	return &Error{Kind: KindMalformedSpec, Subject: row, Detail: detail}
}

func ErrUnrecognizedMode(selector string) *Error {
	return &Error{Kind: KindUnrecognizedMode, Subject: selector, Detail: "expected a 'def' (declarations) or 'reg' (registrations) prefix"}
}

func ErrMarkerNotFound(marker string) *Error {
	return &Error{Kind: KindMarkerNotFound, Subject: marker}
}

func ErrMarkerAmbiguous(marker string, count int) *Error {
	return &Error{Kind: KindMarkerAmbiguous, Subject: marker, Detail: fmt.Sprintf("appears %d times, expected exactly once", count)}
}

func ErrArtifactIO(path string, err error) *Error {
	return &Error{Kind: KindArtifactIO, Subject: path, Err: err}
}

func ErrOutputDrift(path, want, got string) *Error {
	return &Error{Kind: KindOutputDrift, Subject: path, Detail: fmt.Sprintf("rendered digest %s, on-disk digest %s", want, got)}
}
