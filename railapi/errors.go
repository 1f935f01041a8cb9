package railapi

import (
	"errors"
	"fmt"
)

// Kind classifies upstream fetch failures. Transport failures are the only
// retryable kind; the rest indicate the remote answered, just not usefully.
type Kind int

const (
	// KindTransport is a connection or timeout failure.
	KindTransport Kind = iota
	// KindStatus is a non-200 (and non-redirect) HTTP response.
	KindStatus
	// KindFormat is a 200 response whose body failed JSON decoding.
	KindFormat
	// KindBlocked is a redirect answer, the upstream's way of rejecting
	// requests it suspects of being automated.
	KindBlocked
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindFormat:
		return "format"
	case KindBlocked:
		return "blocked"
	}
	return "unknown"
}

// Error is a classified upstream fetch failure.
type Error struct {
	Kind       Kind
	Msg        string
	StatusCode int
	Attempts   int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf extracts the failure kind from err. Unclassified errors count as
// transport failures.
func KindOf(err error) Kind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return KindTransport
}

// IsBlocked reports whether err is an upstream-blocked signal.
func IsBlocked(err error) bool { return err != nil && KindOf(err) == KindBlocked }

// IsTransport reports whether err is a connection/timeout failure.
func IsTransport(err error) bool { return err != nil && KindOf(err) == KindTransport }
