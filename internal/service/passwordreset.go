package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/link"
	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/mail"
	"github.com/aveslog/backend/internal/model"
)

var (
	// ErrEmailMissing is reported to the caller even though it discloses
	// account existence. The original client depends on the distinction, so
	// it stays until a deliberate API change.
	ErrEmailMissing = errors.New("email not associated with any account")

	ErrResetTokenMissing = errors.New("password reset token missing")
)

// PasswordResetService issues single-use reset tokens over mail and applies
// password changes. Every password change, reset-driven or authenticated,
// revokes the account's refresh tokens so all sessions re-login.
type PasswordResetService struct {
	store      *db.Postgres
	dispatcher mail.Dispatcher
	links      *link.Factory
	logger     *zap.Logger
}

func NewPasswordResetService(store *db.Postgres, dispatcher mail.Dispatcher, links *link.Factory, logger *zap.Logger) *PasswordResetService {
	return &PasswordResetService{
		store:      store,
		dispatcher: dispatcher,
		links:      links,
		logger:     logger,
	}
}

// InitiatePasswordReset creates or overwrites the account's single reset
// token and mails the reset link. The token commits before dispatch is
// attempted.
func (s *PasswordResetService) InitiatePasswordReset(ctx context.Context, rawEmail string, loc *locale.LoadedLocale) error {
	account, err := s.store.AccountByEmail(ctx, rawEmail)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrEmailMissing
		}
		return err
	}

	token, err := CreateToken()
	if err != nil {
		return err
	}
	if err := s.store.UpsertPasswordResetToken(ctx, account.ID, token); err != nil {
		return err
	}

	if err := s.sendResetEmail(ctx, account.Email, token, loc); err != nil {
		s.logger.Warn("password reset mail dispatch failed",
			zap.String("email", rawEmail), zap.Error(err))
		return err
	}
	return nil
}

func (s *PasswordResetService) sendResetEmail(ctx context.Context, email, token string, loc *locale.LoadedLocale) error {
	resetLink := s.links.FrontendLink(
		fmt.Sprintf("/authentication/password-reset/%s", token))
	message := loc.Text(
		"You have requested a password reset of your Birding account. " +
			"Please follow this link to get to your password reset form: ")
	return s.dispatcher.Dispatch(ctx, email,
		"Aveslog Password Reset", message+resetLink)
}

// PerformPasswordReset consumes a reset token: the stored hash is replaced
// with a fresh salt and hash, the token is deleted, and the account's
// refresh tokens are revoked, all atomically. A second attempt with the
// same token fails with ErrResetTokenMissing.
func (s *PasswordResetService) PerformPasswordReset(ctx context.Context, token, newPassword string) error {
	accountID, err := s.store.AccountIDByResetToken(ctx, token)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrResetTokenMissing
		}
		return err
	}

	salt, hash, err := CreateSaltHashedPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdateHashedPassword(ctx, accountID, salt, hash, token)
}

// UpdatePassword is the authenticated in-session change. Same hash-and-store
// step as a reset, same refresh-token invalidation.
func (s *PasswordResetService) UpdatePassword(ctx context.Context, account *model.Account, newPassword string) error {
	salt, hash, err := CreateSaltHashedPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdateHashedPassword(ctx, account.ID, salt, hash, "")
}
