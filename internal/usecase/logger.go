package usecase

import "go.uber.org/zap"

func namedLogger(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(name)
}
