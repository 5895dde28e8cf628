package session

import (
	"errors"
	"fmt"

	"github.com/iudanet/sdgb/pkg/api"
)

var (
	// ErrAlreadyLoggedIn is returned by Login on a LoggedIn session
	ErrAlreadyLoggedIn = errors.New("session is already logged in")

	// ErrNotLoggedIn is returned before any network call by operations that need a login
	ErrNotLoggedIn = errors.New("session is not logged in")

	// ErrNoLoginTimestamp - нет timestamp ни в опциях, ни в сессии, ни в хранилище
	ErrNoLoginTimestamp = errors.New("no login timestamp available for logout")

	// ErrNoDocument - документ аккаунта еще не загружен через FetchDocument
	ErrNoDocument = errors.New("account document is not loaded")

	// ErrLogin - сервер отказал во входе
	ErrLogin = errors.New("login refused")

	// ErrAccountLocked - аккаунт не вышел из предыдущей сессии (код 100)
	ErrAccountLocked = errors.New("account is locked by an unfinished session")

	// ErrCredentialExpired - QR-код устарел (код 102)
	ErrCredentialExpired = errors.New("login credential expired")

	// ErrLogoutVerification - после UserLogoutApi сервер все еще считает аккаунт активным
	ErrLogoutVerification = errors.New("account is still logged in after logout")

	// ErrRejected - upsert-запрос вернул returnCode != 1
	ErrRejected = errors.New("request rejected by server")
)

// LoginError describes a login refused by the server.
// It matches ErrLogin and, depending on the code, ErrAccountLocked or ErrCredentialExpired.
type LoginError struct {
	UserID     int64
	ReturnCode int
}

func (e *LoginError) Error() string {
	reason := "login refused"
	switch e.ReturnCode {
	case api.ReturnCodeAccountLocked:
		reason = "account has not logged out"
	case api.ReturnCodeCredentialExpired:
		reason = "credential expired, request a new QR code"
	}
	return fmt.Sprintf("user %d: %s (returnCode %d)", e.UserID, reason, e.ReturnCode)
}

// Is сопоставляет LoginError с сигнальными ошибками по коду возврата
func (e *LoginError) Is(target error) bool {
	switch target {
	case ErrLogin:
		return true
	case ErrAccountLocked:
		return e.ReturnCode == api.ReturnCodeAccountLocked
	case ErrCredentialExpired:
		return e.ReturnCode == api.ReturnCodeCredentialExpired
	default:
		return false
	}
}
