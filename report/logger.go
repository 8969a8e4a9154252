// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package report

import (
	"log/slog"
)

// Logger emits notices as structured log records.
type Logger struct {
	Logger *slog.Logger // Destination logger; slog.Default() if nil.
}

var _ Sink = (*Logger)(nil)

func (lg *Logger) logger() *slog.Logger {
	if lg.Logger == nil {
		return slog.Default()
	}
	return lg.Logger
}

func (lg *Logger) RunStart(test string) {
	lg.logger().Info("test started", "test", test)
}

func (lg *Logger) Failure(fail Failure) {
	lg.logger().Error("assertion failed",
		"test", fail.Test,
		"directive", fail.Directive,
		"address", fail.Address,
		"expected", fail.Expected,
		"actual", fail.Actual,
	)
}

func (lg *Logger) Timeout(test string, address uint64, steps uint64) {
	lg.logger().Error("test timed out", "test", test, "address", address, "steps", steps)
}

func (lg *Logger) Success(count int) {
	lg.logger().Info("all tests passed", "count", count)
}

func (lg *Logger) Summary(passed, failed, skipped int) {
	lg.logger().Warn("suite failed", "passed", passed, "failed", failed, "skipped", skipped)
}
