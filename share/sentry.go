package share

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// InitSentry enables error reporting when SENTRY_DSN is set. With an empty DSN
// the sentry client drops every event.
func InitSentry(release string) error {
	err := sentry.Init(
		sentry.ClientOptions{
			Dsn:     os.Getenv("SENTRY_DSN"),
			Release: release,
		},
	)
	return errors.WithStack(err)
}

// Capture reports a terminal error tagged with its kind and waits for delivery.
func Capture(err error) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("kind", KindName(err))
		sentry.CaptureException(err)
	})
	sentry.Flush(2 * time.Second)
}
