package vrt

import "github.com/sirupsen/logrus"

// _lg is the package-level logger. Unpack logs a warning through it just
// before it returns an error for an unrecognized CIF bit or a truncated
// field record; nothing else in the package logs.
var _lg = logrus.New()

// SetLogger overrides the package-level logger. Callers embedding this
// module into a larger application typically call this once at startup to
// route VRT diagnostics into their own logging pipeline.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}
