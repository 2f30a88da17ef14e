package llm

import (
	"errors"
	"fmt"
)

// Error types for classifying LLM errors. The phase executor keys its
// escalation decisions off these classifications.

// TransientError represents a temporary error that may succeed on retry or
// tier escalation: network failures, 5xx responses, 429 rate limits,
// per-call timeouts.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// PermanentError represents an error that will not succeed on retry:
// invalid requests, auth failures, unknown models.
type PermanentError struct {
	err error
}

func (e *PermanentError) Error() string {
	return e.err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.err
}

// NewPermanentError wraps an error as permanent (non-retryable).
func NewPermanentError(err error) error {
	return &PermanentError{err: err}
}

// SafetyKind identifies which spend guard rejected a call.
type SafetyKind string

const (
	SafetyModelNotAllowed  SafetyKind = "model_not_allowed"
	SafetyTokenCostTooHigh SafetyKind = "token_cost_too_high"
	SafetyCostCapExceeded  SafetyKind = "cost_cap_exceeded"
)

// SafetyError represents a call rejected by a spend guard. Safety errors are
// never retried and never escalated.
type SafetyError struct {
	Kind SafetyKind
	err  error
}

func (e *SafetyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *SafetyError) Unwrap() error {
	return e.err
}

// NewSafetyError wraps an error as a safety violation of the given kind.
func NewSafetyError(kind SafetyKind, err error) error {
	return &SafetyError{Kind: kind, err: err}
}

// ContextTooLargeError indicates the input exceeded the model's context
// window. The executor escalates one tier (a larger-context model)
// regardless of the escalation flags.
type ContextTooLargeError struct {
	err error
}

func (e *ContextTooLargeError) Error() string {
	return e.err.Error()
}

func (e *ContextTooLargeError) Unwrap() error {
	return e.err
}

// NewContextTooLargeError wraps an error as a context-window overflow.
func NewContextTooLargeError(err error) error {
	return &ContextTooLargeError{err: err}
}

// IsTransient returns true if the error is transient and may succeed on retry.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsPermanent returns true if the error is permanent and should not be retried.
func IsPermanent(err error) bool {
	var permanent *PermanentError
	return errors.As(err, &permanent)
}

// IsSafety returns true if the error is a safety violation.
func IsSafety(err error) bool {
	var safety *SafetyError
	return errors.As(err, &safety)
}

// SafetyKindOf returns the safety kind, or "" when err is not a safety error.
func SafetyKindOf(err error) SafetyKind {
	var safety *SafetyError
	if errors.As(err, &safety) {
		return safety.Kind
	}
	return ""
}

// IsContextTooLarge returns true if the input exceeded the model's context window.
func IsContextTooLarge(err error) bool {
	var ctl *ContextTooLargeError
	return errors.As(err, &ctl)
}

// IsCostCapExceeded returns true if the per-job cost cap rejected the call.
func IsCostCapExceeded(err error) bool {
	return SafetyKindOf(err) == SafetyCostCapExceeded
}
