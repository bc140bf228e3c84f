package db

import (
	"context"
	"time"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) InsertRefreshToken(ctx context.Context, token string, accountID int64, expirationDate time.Time) (*model.RefreshToken, error) {
	query := `
		INSERT INTO refresh_token (token, account_id, expiration_date)
		VALUES ($1, $2, $3)
		RETURNING id, token, account_id, expiration_date
	`
	var refreshToken model.RefreshToken
	err := db.Pool.QueryRow(ctx, query, token, accountID, expirationDate).Scan(
		&refreshToken.ID,
		&refreshToken.Token,
		&refreshToken.AccountID,
		&refreshToken.ExpirationDate,
	)
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

func (db *Postgres) RefreshTokenByID(ctx context.Context, id int64) (*model.RefreshToken, error) {
	query := `
		SELECT id, token, account_id, expiration_date
		FROM refresh_token
		WHERE id = $1
	`
	var refreshToken model.RefreshToken
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&refreshToken.ID,
		&refreshToken.Token,
		&refreshToken.AccountID,
		&refreshToken.ExpirationDate,
	)
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

// RefreshTokenByJWT is an exact string match on the raw token. It is how a
// refresh token is confirmed unrevoked before a new access token is minted.
func (db *Postgres) RefreshTokenByJWT(ctx context.Context, jwt string) (*model.RefreshToken, error) {
	query := `
		SELECT id, token, account_id, expiration_date
		FROM refresh_token
		WHERE token = $1
	`
	var refreshToken model.RefreshToken
	err := db.Pool.QueryRow(ctx, query, jwt).Scan(
		&refreshToken.ID,
		&refreshToken.Token,
		&refreshToken.AccountID,
		&refreshToken.ExpirationDate,
	)
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

func (db *Postgres) DeleteRefreshToken(ctx context.Context, id int64) error {
	query := `
		DELETE FROM refresh_token
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id)
	return err
}
