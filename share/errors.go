package share

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every failure that reaches main wraps exactly one of these.
var (
	ErrConfig  = errors.New("config error")
	ErrAuth    = errors.New("auth error")
	ErrNetwork = errors.New("network error")
	ErrAPI     = errors.New("api error")
	ErrParse   = errors.New("parse error")
	ErrIO      = errors.New("io error")
)

var kinds = []error{ErrConfig, ErrAuth, ErrNetwork, ErrAPI, ErrParse, ErrIO}

// Kind returns the error kind err belongs to, or nil.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindName is Kind as a short label for logs and sentry tags.
func KindName(err error) string {
	switch Kind(err) {
	case ErrConfig:
		return "config"
	case ErrAuth:
		return "auth"
	case ErrNetwork:
		return "network"
	case ErrAPI:
		return "api"
	case ErrParse:
		return "parse"
	case ErrIO:
		return "io"
	}
	return "unknown"
}

type kindError struct {
	kind  error
	cause error
	msg   string
}

func (e *kindError) Error() string        { return e.msg + ": " + e.cause.Error() }
func (e *kindError) Is(target error) bool { return target == e.kind }
func (e *kindError) Unwrap() error        { return e.cause }

// WrapKind marks err as kind and keeps err reachable through errors.Is/As.
func WrapKind(kind error, err error, format string, args ...interface{}) error {
	return errors.WithStack(&kindError{
		kind:  kind,
		cause: err,
		msg:   fmt.Sprintf(format, args...),
	})
}

func IsContextClosedError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
