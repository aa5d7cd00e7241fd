package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// thresholdCore drops entries below its own threshold, independent of the
// level of the wrapped core. The CLI uses it to quiet a shared logger
// without touching the global level.
type thresholdCore struct {
	zapcore.Core

	threshold zapcore.LevelEnabler
}

func (c *thresholdCore) Enabled(l zapcore.Level) bool {
	return c.threshold.Enabled(l)
}

//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *thresholdCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.threshold.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

//nolint:ireturn,nolintlint // zapcore.Core is the zap contract.
func (c *thresholdCore) With(fields []zapcore.Field) zapcore.Core {
	return &thresholdCore{Core: c.Core.With(fields), threshold: c.threshold}
}

// WithThreshold wraps a logger's core so that only entries enabled by
// threshold are written.
//
//nolint:ireturn,nolintlint // zap.Option is the zap contract.
func WithThreshold(threshold zapcore.LevelEnabler) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &thresholdCore{Core: core, threshold: threshold}
	})
}

// WithLevelName is WithThreshold for a level given by name, as in the
// log_level setting or the --log-level flag.
//
//nolint:ireturn,nolintlint // zap.Option is the zap contract.
func WithLevelName(name string) (zap.Option, error) {
	level, ok := ParseLogLevel(name)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", name)
	}

	return WithThreshold(level), nil
}
