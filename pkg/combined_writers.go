package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees log output to several sinks (stdout and the rotated log file).
// A write counts as successful while at least one sink accepts it.
type CombinedWriter struct {
	sinks []io.Writer
}

func NewCombinedWriter(sinks ...io.Writer) *CombinedWriter {
	return &CombinedWriter{sinks: sinks}
}

func (cw *CombinedWriter) Sinks() int {
	return len(cw.sinks)
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	accepted := 0
	for _, sink := range cw.sinks {
		if _, err := sink.Write(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		accepted++
	}

	if accepted == 0 && len(cw.sinks) > 0 {
		return 0, errs
	}
	// one broken sink must not make the logger drop the line
	return len(p), errs
}
