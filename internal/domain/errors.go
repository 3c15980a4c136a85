package domain

import (
	"errors"
	"fmt"
)

// Stage names one of the three lookups in a pass lookup run.
type Stage string

const (
	StageIP     Stage = "ip"
	StageGeo    Stage = "geo"
	StagePasses Stage = "passes"
)

var (
	ErrEmptyIP            = errors.New("ip address must be non-empty")
	ErrInvalidCoordinates = errors.New("coordinates must be finite numbers")
)

// TransportError reports that the HTTP round trip itself failed
// (DNS, connection, timeout). Unwrap returns the transport's error unchanged.
type TransportError struct {
	Stage Stage
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s lookup: transport: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
func (e *TransportError) FailedStage() Stage { return e.Stage }

// StatusError reports a non-200 response from a lookup service.
type StatusError struct {
	Stage   Stage
	Code    int
	Hint    string
	Message string
}

func NewStatusError(stage Stage, code int, message string) *StatusError {
	return &StatusError{
		Stage:   stage,
		Code:    code,
		Hint:    StatusHint(code),
		Message: message,
	}
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s lookup: status code %d: server message says: %s", e.Stage, e.Code, e.Message)
	}
	return fmt.Sprintf("%s lookup: status code %d (%s)", e.Stage, e.Code, e.Hint)
}

func (e *StatusError) FailedStage() Stage { return e.Stage }

// StatusHint returns a human-readable reference for an HTTP status code.
func StatusHint(code int) string {
	return fmt.Sprintf("See https://http.cat/%d for more info", code)
}

// ParseError reports a body that is not valid JSON or lacks an expected field.
type ParseError struct {
	Stage Stage
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s lookup: parse response: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
func (e *ParseError) FailedStage() Stage { return e.Stage }

// MissingField builds a ParseError for a required field absent from the body.
func MissingField(stage Stage, field string) *ParseError {
	return &ParseError{Stage: stage, Err: fmt.Errorf("missing field %q", field)}
}

// InputError reports a stage input rejected before any request was made.
// Unwrap returns the sentinel (ErrEmptyIP, ErrInvalidCoordinates).
type InputError struct {
	Stage Stage
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s lookup: invalid input: %v", e.Stage, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
func (e *InputError) FailedStage() Stage { return e.Stage }

// UpstreamError reports a 200 response whose payload signals failure.
type UpstreamError struct {
	Stage   Stage
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s lookup: upstream reported failure", e.Stage)
	}
	return fmt.Sprintf("%s lookup: upstream reported failure: %s", e.Stage, e.Message)
}

func (e *UpstreamError) FailedStage() Stage { return e.Stage }

// StageOf reports which lookup produced err, if it is one of the lookup errors.
func StageOf(err error) (Stage, bool) {
	var s interface{ FailedStage() Stage }
	if errors.As(err, &s) {
		return s.FailedStage(), true
	}
	return "", false
}
