package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConfig     Kind = "config"
	KindUpstream   Kind = "upstream"
	KindUnknown    Kind = "unknown"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindValidation:
		return "Invalid request."
	case KindConfig:
		return "API configuration error"
	case KindUpstream:
		return "External API error"
	default:
		return "Internal server error"
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func Validation(safeMessage string) error {
	return New(KindValidation, safeMessage, nil)
}

func Config(cause error) error {
	return New(KindConfig, "", cause)
}

func Upstream(cause error) error {
	return New(KindUpstream, "", cause)
}

// KindOf reports the classification of err. Errors that do not carry a
// kind are treated as KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return KindUnknown
	}
	return e.Kind
}

// PublicMessage returns the user-facing message for err. The underlying
// cause is never exposed for non-validation kinds.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindValidation {
			return e.Error()
		}
		return defaultSafeMessage(e.Kind)
	}
	return defaultSafeMessage(KindUnknown)
}
