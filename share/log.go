package share

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLog configures the package level logrus logger.
func SetupLog(w io.Writer, level string) error {
	lv, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(ErrConfig, "log level %q: %v", level, err)
	}

	log.SetOutput(w)
	log.SetLevel(lv)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return nil
}
