package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/link"
	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/mail"
	"github.com/aveslog/backend/internal/model"
)

var (
	ErrEmailInvalid        = errors.New("email invalid")
	ErrEmailTaken          = errors.New("email taken")
	ErrRegistrationMissing = errors.New("associated registration missing")
	ErrUsernameTaken       = errors.New("username taken")
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.-]{5,32}$`)
	passwordRegex = regexp.MustCompile(`^.{8,128}$`)
)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

func IsValidPassword(password string) bool {
	return passwordRegex.MatchString(password)
}

// ValidationError aggregates every field violation so the caller can show
// them all at once instead of failing on the first.
type ValidationError struct {
	InvalidUsername bool
	InvalidPassword bool
}

func (e *ValidationError) Error() string {
	return "field validation failed"
}

// RegistrationService drives the new-account flow: a pending registration is
// created and mailed out, then completed exactly once into an account with a
// linked birder profile.
type RegistrationService struct {
	store      *db.Postgres
	dispatcher mail.Dispatcher
	links      *link.Factory
	logger     *zap.Logger
}

func NewRegistrationService(store *db.Postgres, dispatcher mail.Dispatcher, links *link.Factory, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		store:      store,
		dispatcher: dispatcher,
		links:      links,
		logger:     logger,
	}
}

// InitiateRegistration validates the email, persists a pending registration
// and mails out the completion link. An email with a live registration gets
// its existing token again, keeping at most one registration per email.
// The registration row commits before dispatch is attempted, so a dispatch
// failure leaves a usable token behind.
func (s *RegistrationService) InitiateRegistration(ctx context.Context, rawEmail string, loc *locale.LoadedLocale) (*model.AccountRegistration, error) {
	if !mail.IsValidEmail(rawEmail) {
		return nil, ErrEmailInvalid
	}

	if _, err := s.store.AccountByEmail(ctx, rawEmail); err == nil {
		return nil, ErrEmailTaken
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	registration, err := s.store.RegistrationByEmail(ctx, rawEmail)
	if db.IsNoRows(err) {
		token, tokenErr := CreateToken()
		if tokenErr != nil {
			return nil, tokenErr
		}
		registration, err = s.store.CreateRegistration(ctx, rawEmail, token)
	}
	if err != nil {
		return nil, err
	}

	if err := s.sendRegistrationEmail(ctx, registration, loc); err != nil {
		s.logger.Warn("registration mail dispatch failed",
			zap.String("email", rawEmail), zap.Error(err))
		return nil, err
	}
	return registration, nil
}

func (s *RegistrationService) sendRegistrationEmail(ctx context.Context, registration *model.AccountRegistration, loc *locale.LoadedLocale) error {
	registrationLink := s.links.FrontendLink(
		fmt.Sprintf("/authentication/registration/%s", registration.Token))
	message := loc.Text(
		"Hi there, thanks for showing interest in birding. " +
			"Here is your link to the registration form: ")
	return s.dispatcher.Dispatch(ctx, registration.Email,
		"Aveslog Registration", message+registrationLink)
}

// PerformRegistration completes a pending registration. The (email, token)
// pair must match a live registration, which guards a token against reuse
// with another email. Field validation is aggregated, and the registration
// is consumed atomically with the account creation.
func (s *RegistrationService) PerformRegistration(ctx context.Context, email, token, username, password string) (*model.Account, error) {
	registration, err := s.store.RegistrationByEmailAndToken(ctx, email, token)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrRegistrationMissing
		}
		return nil, err
	}

	validation := &ValidationError{
		InvalidUsername: !IsValidUsername(username),
		InvalidPassword: !IsValidPassword(password),
	}
	if validation.InvalidUsername || validation.InvalidPassword {
		return nil, validation
	}

	if _, err := s.store.AccountByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	salt, hash, err := CreateSaltHashedPassword(password)
	if err != nil {
		return nil, err
	}

	account, err := s.store.CreateAccount(ctx, registration.ID, registration.Email, username, salt, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return account, nil
}
