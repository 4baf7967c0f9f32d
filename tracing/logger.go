package tracing

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

type loggerTracer struct {
	logger lager.Logger
}

// NewLoggerTracer logs every alignment at debug level.
func NewLoggerTracer(logger lager.Logger) boyermoore.Tracer {
	return &loggerTracer{
		logger: logger.Session("boyer-moore"),
	}
}

func (t *loggerTracer) Alignment(e boyermoore.Event) {
	if e.FullMatch() {
		t.logger.Debug("match", lager.Data{
			"offset":        e.Offset,
			"shift-applied": e.AppliedShift,
		})
		return
	}

	t.logger.Debug("mismatch", lager.Data{
		"offset":              e.Offset,
		"mismatch-index":      e.MismatchIndex,
		"bad-character-shift": e.BadCharShift,
		"good-suffix-shift":   e.GoodSuffixShift,
		"shift-applied":       e.AppliedShift,
	})
}
