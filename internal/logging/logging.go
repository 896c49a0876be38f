// Package logging builds the zap loggers used across the daemon.
package logging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// New returns a production logger, or a development logger when debug is set.
func New(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Error logs err at error level, except for context cancellation which is
// expected during shutdown and is logged as a warning.
func Error(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errors.Is(err, context.Canceled) {
		logger.Warn(msg, fields...)
		return
	}
	logger.Error(msg, fields...)
}
