package api

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"time"
)

// callInfo описывает вызов для логирующего транспорта
type callInfo struct {
	apiName string
	quiet   bool
}

type callInfoKey struct{}

func withCallInfo(ctx context.Context, info callInfo) context.Context {
	return context.WithValue(ctx, callInfoKey{}, info)
}

// loggingTransport логирует каждый HTTP-обмен с игровым сервером:
// имя API, хеш эндпоинта, статус, время выполнения и размер ответа.
// Тела запросов и userId из User-Agent не логируются.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger // nil - slog.Default() на момент вызова
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	info, _ := req.Context().Value(callInfoKey{}).(callInfo)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Warn("sdgb round trip failed",
			"api", info.apiName,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	level := slog.LevelInfo
	if resp.StatusCode >= 500 {
		level = slog.LevelError
	} else if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	} else if info.quiet {
		level = slog.LevelDebug
	}

	logger.Log(req.Context(), level, "sdgb call",
		"api", info.apiName,
		"hash", path.Base(req.URL.Path),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
		"bytes", resp.ContentLength,
	)

	return resp, nil
}
