// Package session реализует конечный автомат сессии игрового аккаунта:
// вход, загрузку документа UserAll, изменения и выход.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/userall"
	"github.com/iudanet/sdgb/internal/rating"
	"github.com/iudanet/sdgb/pkg/api"
)

// loginSkew - timestamp логина сдвигается назад на случай расхождения часов
const loginSkew = 60 * time.Second

// State is the login state of a session.
type State int

const (
	NotLoggedIn State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "not_logged_in"
}

// Identity описывает автомат, от имени которого выполняется вход
type Identity struct {
	Keychip    string
	PlaceID    int
	PlaceName  string
	RegionID   int
	RegionName string
}

// DefaultIdentity возвращает идентичность автомата по умолчанию
func DefaultIdentity() Identity {
	return Identity{
		Keychip:    "A63E01C2805",
		PlaceID:    1403,
		PlaceName:  "插电师电玩北京西单大悦城店",
		RegionID:   1,
		RegionName: "北京",
	}
}

// Config содержит параметры сессии одного пользователя
type Config struct {
	UserID       int64
	Identity     Identity
	GameVersion  string
	RatingOffset int
}

// Option настраивает Session
type Option func(*Session)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithPlaySpecial задает токен PlaySpecial вместо случайного
func WithPlaySpecial(token int32) Option {
	return func(s *Session) {
		s.playSpecial = token
	}
}

// Session is the state machine of one user's connection.
// It is not safe for concurrent use; create one Session per user.
type Session struct {
	caller   Caller
	recovery storage.RecoveryStorage
	cfg      Config
	now      func() time.Time
	log      *slog.Logger

	playSpecial int32

	state          State
	loginID        int64
	loginTimestamp int64
	doc            *userall.Document
}

// New создает сессию в состоянии NotLoggedIn. PlaySpecial вычисляется один раз
// и используется во всех записях play-log этой сессии.
func New(caller Caller, recovery storage.RecoveryStorage, cfg Config, opts ...Option) (*Session, error) {
	token, err := rating.NewPlaySpecial()
	if err != nil {
		return nil, err
	}

	s := &Session{
		caller:      caller,
		recovery:    recovery,
		cfg:         cfg,
		now:         time.Now,
		playSpecial: token,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = slog.With(
		"trace_id", uuid.NewString(),
		"user_id", cfg.UserID,
	)

	return s, nil
}

// State возвращает текущее состояние
func (s *Session) State() State {
	return s.state
}

// LoginID возвращает loginId текущего входа или 0
func (s *Session) LoginID() int64 {
	return s.loginID
}

// PlaySpecial возвращает анти-чит токен сессии
func (s *Session) PlaySpecial() int32 {
	return s.playSpecial
}

// Document возвращает загруженный документ аккаунта
func (s *Session) Document() (*userall.Document, error) {
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	return s.doc, nil
}

func (s *Session) call(ctx context.Context, opts apiclient.CallOptions, apiName string, body, result any) error {
	return s.caller.CallWith(ctx, opts, apiName, s.cfg.UserID, body, result)
}

func (s *Session) requireLogin() error {
	if s.state != LoggedIn {
		return ErrNotLoggedIn
	}
	return nil
}

// Login выполняет UserLoginApi. Timestamp сохраняется в RecoveryStorage до
// отправки запроса, чтобы выход был возможен после падения процесса.
func (s *Session) Login(ctx context.Context) (*api.UserLoginResponse, error) {
	if s.state == LoggedIn {
		return nil, ErrAlreadyLoggedIn
	}

	ts := s.now().Add(-loginSkew).Unix()
	if err := s.recovery.SaveLoginTimestamp(ctx, s.cfg.UserID, ts); err != nil {
		return nil, fmt.Errorf("failed to persist login timestamp: %w", err)
	}
	s.loginTimestamp = ts
	s.log.Debug("login timestamp saved", "timestamp", ts)

	id := s.cfg.Identity
	req := api.UserLoginRequest{
		UserID:     s.cfg.UserID,
		AccessCode: "",
		RegionID:   id.RegionID,
		PlaceID:    id.PlaceID,
		ClientID:   id.Keychip,
		DateTime:   ts,
	}

	var resp api.UserLoginResponse
	if err := s.call(ctx, apiclient.CallOptions{}, api.APIUserLogin, req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if resp.ReturnCode != api.ReturnCodeOK {
		loginErr := &LoginError{UserID: s.cfg.UserID, ReturnCode: resp.ReturnCode}
		s.log.Error("login refused", "return_code", resp.ReturnCode)
		return nil, loginErr
	}

	s.loginID = resp.LoginID
	s.state = LoggedIn
	s.log.Info("logged in", "login_id", resp.LoginID)

	return &resp, nil
}

// LogoutOptions параметры выхода
type LogoutOptions struct {
	// Timestamp переопределяет dateTime логина; 0 - взять из сессии или хранилища
	Timestamp int64
	// Verify проверяет через GetUserPreviewApi, что сервер закрыл сессию
	Verify bool
}

// DefaultLogoutOptions возвращает опции с проверкой выхода
func DefaultLogoutOptions() LogoutOptions {
	return LogoutOptions{Verify: true}
}

// Logout выполняет UserLogoutApi. Сессия переходит в NotLoggedIn при любом
// исходе запроса.
func (s *Session) Logout(ctx context.Context, opts LogoutOptions) error {
	ts, err := s.logoutTimestamp(ctx, opts.Timestamp)
	if err != nil {
		return err
	}

	id := s.cfg.Identity
	req := api.UserLogoutRequest{
		UserID:     s.cfg.UserID,
		AccessCode: "",
		RegionID:   id.RegionID,
		PlaceID:    id.PlaceID,
		ClientID:   id.Keychip,
		DateTime:   ts,
		Type:       1,
	}

	err = s.call(ctx, apiclient.CallOptions{}, api.APIUserLogout, req, nil)
	s.reset()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info("logout sent", "timestamp", ts)

	if !opts.Verify {
		return nil
	}

	preview, err := s.Preview(ctx)
	if err != nil {
		return fmt.Errorf("logout verification: %w", err)
	}
	if preview.IsLogin {
		s.log.Error("account is still logged in after logout")
		return ErrLogoutVerification
	}

	return nil
}

func (s *Session) logoutTimestamp(ctx context.Context, override int64) (int64, error) {
	if override != 0 {
		return override, nil
	}
	if s.loginTimestamp != 0 {
		return s.loginTimestamp, nil
	}

	ts, err := s.recovery.GetLoginTimestamp(ctx, s.cfg.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrTimestampNotFound) {
			return 0, fmt.Errorf("%w: %w", ErrNoLoginTimestamp, err)
		}
		return 0, fmt.Errorf("failed to load login timestamp: %w", err)
	}
	s.log.Debug("login timestamp recovered from storage", "timestamp", ts)
	return ts, nil
}

func (s *Session) reset() {
	s.state = NotLoggedIn
	s.loginID = 0
	s.loginTimestamp = 0
	s.doc = nil
}

// Preview выполняет GetUserPreviewApi; вход не требуется
func (s *Session) Preview(ctx context.Context) (*api.UserPreviewResponse, error) {
	req := api.UserPreviewRequest{UserID: s.cfg.UserID}

	var resp api.UserPreviewResponse
	if err := s.call(ctx, apiclient.CallOptions{Quiet: true}, api.APIGetUserPreview, req, &resp); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &resp, nil
}

// FetchDocument загружает данные аккаунта и собирает новый документ UserAll.
// Все билеты с неотрицательным stock обнуляются.
func (s *Session) FetchDocument(ctx context.Context) (*userall.Document, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	user := api.UserRequest{UserID: s.cfg.UserID}
	opts := apiclient.CallOptions{}

	var (
		data     api.UserDataResponse
		extend   api.UserExtendResponse
		option   api.UserOptionResponse
		rate     api.UserRatingResponse
		activity api.UserActivityResponse
		charge   api.UserChargeRecordsResponse
	)

	fetches := []struct {
		name   string
		result any
	}{
		{api.APIGetUserData, &data},
		{api.APIGetUserExtend, &extend},
		{api.APIGetUserOption, &option},
		{api.APIGetUserRating, &rate},
		{api.APIGetUserActivity, &activity},
		{api.APIGetUserCharge, &charge},
	}
	for _, f := range fetches {
		if err := s.call(ctx, opts, f.name, user, f.result); err != nil {
			return nil, fmt.Errorf("fetch document: %w", err)
		}
	}

	charges, err := userall.ResetChargeStock(charge.UserChargeList)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	id := s.cfg.Identity
	s.doc = userall.Build(userall.Params{
		UserID:         s.cfg.UserID,
		LoginID:        s.loginID,
		LoginTimestamp: s.loginTimestamp,
		Keychip:        id.Keychip,
		PlaceID:        id.PlaceID,
		PlaceName:      id.PlaceName,
		RegionID:       id.RegionID,
		RegionName:     id.RegionName,
		GameVersion:    s.cfg.GameVersion,
		RatingOffset:   s.cfg.RatingOffset,
		PlaySpecial:    s.playSpecial,
		Clock:          s.now,
	}, userall.Sources{
		UserData: data.UserData,
		Extend:   extend.UserExtend,
		Option:   option.UserOption,
		Rating:   rate.UserRating,
		Activity: activity.UserActivity,
		Charges:  charges,
	})
	s.log.Info("account document loaded", "charges", len(charges))

	return s.doc, nil
}

// LoginAndFetch выполняет Login и затем FetchDocument
func (s *Session) LoginAndFetch(ctx context.Context) (*userall.Document, error) {
	if _, err := s.Login(ctx); err != nil {
		return nil, err
	}
	return s.FetchDocument(ctx)
}

// ActiveTickets возвращает билеты аккаунта (GetUserChargeApi)
func (s *Session) ActiveTickets(ctx context.Context) (*api.UserChargeResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	var resp api.UserChargeResponse
	req := api.UserRequest{UserID: s.cfg.UserID}
	if err := s.call(ctx, apiclient.CallOptions{}, api.APIGetUserCharge, req, &resp); err != nil {
		return nil, fmt.Errorf("active tickets: %w", err)
	}
	return &resp, nil
}

// Upsert отправляет произвольное тело в UpsertUserAllApi
func (s *Session) Upsert(ctx context.Context, payload any) (*api.CodeResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	return s.upsert(ctx, apiclient.CallOptions{}, api.APIUpsertUserAll, payload)
}

func (s *Session) upsert(ctx context.Context, opts apiclient.CallOptions, apiName string, payload any) (*api.CodeResponse, error) {
	var resp api.CodeResponse
	if err := s.call(ctx, opts, apiName, payload, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", apiName, err)
	}
	if resp.ReturnCode != api.ReturnCodeOK {
		return &resp, fmt.Errorf("%w: %s returned %d", ErrRejected, apiName, resp.ReturnCode)
	}
	return &resp, nil
}
