package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/sdgb/internal/client/retry"
)

var (
	// ErrRequest - сервер отклонил запрос (статус не 200); не повторяется
	ErrRequest = errors.New("request rejected by server")
	// ErrResponse - ответ не удалось расшифровать, распаковать или разобрать; повторяется
	ErrResponse = errors.New("malformed response")
	// ErrProtocolExhausted - все попытки завершились ErrResponse или сетевой ошибкой
	ErrProtocolExhausted = retry.ErrExhausted
)

// StatusError is returned for any HTTP status other than 200.
type StatusError struct {
	APIName    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.APIName, e.StatusCode)
}

// Is позволяет сравнивать StatusError с ErrRequest
func (e *StatusError) Is(target error) bool {
	return target == ErrRequest
}
