package session

import (
	"context"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
)

//go:generate moq -out caller_mock.go . Caller

// Caller выполняет один вызов API игрового сервера с шифрованием и повторами.
// *apiclient.Client реализует этот интерфейс.
type Caller interface {
	CallWith(ctx context.Context, opts apiclient.CallOptions, apiName string, userID int64, body, result any) error
}

var _ Caller = (*apiclient.Client)(nil)
