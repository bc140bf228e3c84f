package service

import (
	"context"
	"errors"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/model"
)

var (
	// ErrCredentialsIncorrect hides whether the username or the password was
	// wrong.
	ErrCredentialsIncorrect = errors.New("credentials incorrect")

	// ErrRefreshTokenRevoked means the token decoded fine but is no longer in
	// the store.
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")

	// ErrAccountMissing means a token decoded to an account that no longer
	// exists.
	ErrAccountMissing = errors.New("authorized account gone")
)

// AuthService verifies credentials and drives the refresh-token lifecycle.
type AuthService struct {
	store  *db.Postgres
	tokens *TokenService
}

func NewAuthService(store *db.Postgres, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// IsAccountPasswordCorrect recomputes the hash with the stored salt and
// compares. A missing credential row means false, never an error.
func (s *AuthService) IsAccountPasswordCorrect(ctx context.Context, account *model.Account, password string) (bool, error) {
	hashed, err := s.store.HashedPassword(ctx, account.ID)
	if err != nil {
		if db.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return VerifyPassword(password, hashed.Salt, hashed.SaltedHash), nil
}

// Authenticate resolves the username and checks the password, collapsing
// both failure modes into ErrCredentialsIncorrect.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	account, err := s.store.AccountByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrCredentialsIncorrect
		}
		return nil, err
	}

	correct, err := s.IsAccountPasswordCorrect(ctx, account, password)
	if err != nil {
		return nil, err
	}
	if !correct {
		return nil, ErrCredentialsIncorrect
	}
	return account, nil
}

// IssueRefreshToken signs a long-lived token and persists it so it can be
// revoked later.
func (s *AuthService) IssueRefreshToken(ctx context.Context, accountID int64) (*model.RefreshToken, error) {
	token, err := s.tokens.CreateRefreshToken(accountID)
	if err != nil {
		return nil, err
	}
	return s.store.InsertRefreshToken(ctx, token.JWT, accountID, token.ExpirationDate)
}

// AccessTokenFromRefresh validates a presented refresh token and mints a new
// access token. Failures stay distinct: ErrTokenInvalid, ErrTokenExpired and
// ErrRefreshTokenRevoked each map to their own client-visible condition.
func (s *AuthService) AccessTokenFromRefresh(ctx context.Context, refreshJWT string) (*model.AccessToken, error) {
	accountID, err := s.tokens.DecodeJWT(refreshJWT)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.RefreshTokenByJWT(ctx, refreshJWT); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrRefreshTokenRevoked
		}
		return nil, err
	}

	return s.tokens.CreateAccessToken(accountID)
}

// AccountByAccessToken resolves the bearer of an access token. Decode
// failures pass through (ErrTokenInvalid, ErrTokenExpired); a token whose
// subject no longer exists yields ErrAccountMissing.
func (s *AuthService) AccountByAccessToken(ctx context.Context, accessJWT string) (*model.Account, error) {
	accountID, err := s.tokens.DecodeJWT(accessJWT)
	if err != nil {
		return nil, err
	}

	account, err := s.store.AccountByID(ctx, accountID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}
	return account, nil
}

func (s *AuthService) RefreshTokenByID(ctx context.Context, id int64) (*model.RefreshToken, error) {
	return s.store.RefreshTokenByID(ctx, id)
}

// RemoveRefreshToken revokes. Ownership is the caller's check: only the
// owning account may revoke its token.
func (s *AuthService) RemoveRefreshToken(ctx context.Context, id int64) error {
	return s.store.DeleteRefreshToken(ctx, id)
}
