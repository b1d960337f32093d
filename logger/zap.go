package logger

import (
	"go.uber.org/zap"
)

type zapAdapter struct {
	sugar *zap.SugaredLogger
}

var _ Logger = &zapAdapter{}

// NewZap adapts a zap SugaredLogger to the Logger interface so the client
// can participate in an application's structured logging setup.
func NewZap(sugar *zap.SugaredLogger) Logger {
	return &zapAdapter{sugar: sugar}
}

func (z *zapAdapter) Debugf(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapAdapter) Infof(format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapAdapter) Warnf(format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapAdapter) Errorf(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
