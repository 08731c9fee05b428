package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the UI
type ErrorKind string

const (
	KindNetwork          ErrorKind = "network_error"
	KindNotFound         ErrorKind = "not_found"
	KindModelUnavailable ErrorKind = "model_unavailable"
	KindUnknown          ErrorKind = "unknown"
)

// Sentinels for errors.Is checks
var (
	ErrNetwork          = errors.New("upstream unreachable")
	ErrNotFound         = errors.New("no matching result")
	ErrModelUnavailable = errors.New("language model unavailable")
)

// FetchError wraps an upstream failure with its kind and the source that produced it
type FetchError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

// NewFetchError builds a FetchError
func NewFetchError(kind ErrorKind, source string, err error) *FetchError {
	return &FetchError{Kind: kind, Source: source, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Source, e.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", e.Source, e.sentinel(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *FetchError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *FetchError) sentinel() error {
	switch e.Kind {
	case KindNetwork:
		return ErrNetwork
	case KindNotFound:
		return ErrNotFound
	case KindModelUnavailable:
		return ErrModelUnavailable
	default:
		return nil
	}
}

// KindOf returns the kind of err, or KindUnknown
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	switch {
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrModelUnavailable):
		return KindModelUnavailable
	}
	return KindUnknown
}
