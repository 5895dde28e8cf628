// Package logger настраивает zap и делает его обработчиком slog по умолчанию.
package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// EnvProd включает production-конфигурацию zap
const EnvProd = "prod"

// New создает zap.Logger для окружения env и устанавливает его как slog.Default.
// Вызывающий отвечает за Sync при завершении.
func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case EnvProd:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(zapslog.NewHandler(logger.Core())))

	return logger, nil
}
