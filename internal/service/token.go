package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aveslog/backend/internal/config"
	"github.com/aveslog/backend/internal/model"
)

var (
	ErrMisconfigured = errors.New("auth config invalid")

	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired means the signature checked out but exp has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenService issues and validates HS256-signed access and refresh tokens.
// The clock is injectable so expiry behavior is testable without sleeping.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg config.AuthConfig) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.JWTRefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_REFRESH_TTL", ErrMisconfigured)
	}

	return &TokenService{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// WithClock replaces the time source, for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// CreateAccessToken signs a short-lived token with sub/iat/exp claims.
func (s *TokenService) CreateAccessToken(accountID int64) (*model.AccessToken, error) {
	return s.createToken(accountID, s.accessTTL)
}

// CreateAccessTokenWithTTL is CreateAccessToken with an explicit lifetime.
func (s *TokenService) CreateAccessTokenWithTTL(accountID int64, ttl time.Duration) (*model.AccessToken, error) {
	return s.createToken(accountID, ttl)
}

// CreateRefreshToken signs with the same scheme but the longer refresh
// lifetime. Persisting the result is the caller's concern.
func (s *TokenService) CreateRefreshToken(accountID int64) (*model.AccessToken, error) {
	return s.createToken(accountID, s.refreshTTL)
}

func (s *TokenService) createToken(accountID int64, ttl time.Duration) (*model.AccessToken, error) {
	now := s.now()
	expiration := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiration),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &model.AccessToken{
		JWT:            signed,
		AccountID:      accountID,
		ExpirationDate: expiration,
	}, nil
}

// DecodeJWT validates signature and expiry and returns the subject account
// id. It never panics and always maps failures onto the two sentinel errors,
// so callers can report expired and invalid tokens distinctly.
func (s *TokenService) DecodeJWT(tokenStr string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenInvalid
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return accountID, nil
}
