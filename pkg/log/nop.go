package log

import "context"

type nopLogger struct{}

// NewNop returns a Logger that discards everything. Used in tests.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, ...any) {}
func (nopLogger) Info(context.Context, ...any)  {}
func (nopLogger) Warn(context.Context, ...any)  {}
func (nopLogger) Error(context.Context, ...any) {}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}
