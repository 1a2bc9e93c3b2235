package model

import "fmt"

// ErrorKind classifies a failed inference call. The failsafe dispatcher
// branches on the kind; it never inspects error strings.
type ErrorKind string

// Inference error kinds.
const (
	ErrKindNetwork    ErrorKind = "network"
	ErrKindTimeout    ErrorKind = "timeout"
	ErrKindService    ErrorKind = "service"
	ErrKindDecode     ErrorKind = "decode"
	ErrKindValidation ErrorKind = "validation"
)

// InferError is the typed error returned by Client.Infer.
type InferError struct {
	Kind   ErrorKind
	Status int // HTTP status for ErrKindService, 0 otherwise
	Err    error
}

func (e *InferError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("model inference failed (%s, http %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("model inference failed (%s): %v", e.Kind, e.Err)
}

func (e *InferError) Unwrap() error { return e.Err }

// Permanent reports whether the failure is a client-side problem (4xx or bad
// input) that retrying or probing cannot fix. The failsafe dispatcher treats
// permanent failures as request defects, not service health signals.
func (e *InferError) Permanent() bool {
	if e.Kind == ErrKindValidation {
		return true
	}
	return e.Kind == ErrKindService && e.Status >= 400 && e.Status < 500
}
