package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/client/userall"
	"github.com/iudanet/sdgb/pkg/api"
)

// Срок действия выданного билета
const (
	ticketBackdate  = time.Hour
	ticketValidity  = 90 * 24 * time.Hour
	ticketValidHour = 4
)

// Ticket выдает билет chargeID через UpsertUserChargelogApi.
// Дата покупки сдвигается на час назад, билет действует 90 дней до 04:00.
func (s *Session) Ticket(ctx context.Context, chargeID, price int) error {
	if err := s.requireLogin(); err != nil {
		return err
	}

	purchased := s.now().In(userall.CST).Add(-ticketBackdate)
	expires := purchased.Add(ticketValidity)
	expires = time.Date(expires.Year(), expires.Month(), expires.Day(), ticketValidHour, 0, 0, 0, userall.CST)

	purchaseDate := purchased.Format("2006-01-02 15:04:05") + ".0"
	id := s.cfg.Identity

	req := api.UpsertUserChargelogRequest{
		UserID: s.cfg.UserID,
		UserCharge: api.ChargeRecord{
			ChargeID:     chargeID,
			Stock:        1,
			PurchaseDate: purchaseDate,
			ValidDate:    expires.Format("2006-01-02 15:04:05"),
		},
		UserChargelog: api.ChargeLog{
			ChargeID:     chargeID,
			Price:        price,
			PurchaseDate: purchaseDate,
			PlaceID:      id.PlaceID,
			RegionID:     id.RegionID,
			ClientID:     id.Keychip,
		},
	}

	if _, err := s.upsert(ctx, apiclient.CallOptions{}, api.APIUpsertUserChargelog, req); err != nil {
		return fmt.Errorf("ticket: %w", err)
	}
	s.log.Info("ticket issued", "charge_id", chargeID, "valid_until", req.UserCharge.ValidDate)

	return nil
}

// CleanupTimeout ограничивает выход после ошибки или отмены контекста
const CleanupTimeout = 30 * time.Second

// Commit загружает play-log, затем документ UserAll и выполняет выход.
// Отмена ctx не прерывает Commit. При любой ошибке выход все равно
// выполняется; возвращается исходная ошибка, к которой добавлена ошибка
// выхода, если она была.
func (s *Session) Commit(ctx context.Context, maxAttempts int) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	doc, err := s.Document()
	if err != nil {
		return multierr.Append(fmt.Errorf("commit: %w", err), s.cleanupLogout(ctx))
	}

	opts := apiclient.CallOptions{MaxAttempts: maxAttempts}
	if err := s.upload(ctx, opts, doc); err != nil {
		s.log.Error("commit failed, logging out", "error", err)
		return multierr.Append(fmt.Errorf("commit: %w", err), s.cleanupLogout(ctx))
	}

	return s.cleanupLogout(ctx)
}

// cleanupLogout выполняет Logout, который не отменяется вместе с ctx
func (s *Session) cleanupLogout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), CleanupTimeout)
	defer cancel()
	return s.Logout(ctx, DefaultLogoutOptions())
}

func (s *Session) upload(ctx context.Context, opts apiclient.CallOptions, doc *userall.Document) error {
	var playlogResp api.CodeResponse
	if err := s.call(ctx, opts, api.APIUploadUserPlaylogList, doc.PlaylogRequest(), &playlogResp); err != nil {
		return fmt.Errorf("upload playlog: %w", err)
	}
	s.log.Info("playlog uploaded", "return_code", playlogResp.ReturnCode)

	if _, err := s.upsert(ctx, opts, api.APIUpsertUserAll, doc.Payload()); err != nil {
		return err
	}
	s.log.Info("account document uploaded", "replace", doc.Replacing())

	return nil
}
