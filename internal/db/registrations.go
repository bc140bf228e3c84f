package db

import (
	"context"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) CreateRegistration(ctx context.Context, email, token string) (*model.AccountRegistration, error) {
	query := `
		INSERT INTO account_registration (email, token, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, email, token, created_at
	`
	var registration model.AccountRegistration
	err := db.Pool.QueryRow(ctx, query, email, token).Scan(
		&registration.ID,
		&registration.Email,
		&registration.Token,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (db *Postgres) RegistrationByEmail(ctx context.Context, email string) (*model.AccountRegistration, error) {
	query := `
		SELECT id, email, token, created_at
		FROM account_registration
		WHERE email = $1
	`
	var registration model.AccountRegistration
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&registration.ID,
		&registration.Email,
		&registration.Token,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (db *Postgres) RegistrationByToken(ctx context.Context, token string) (*model.AccountRegistration, error) {
	query := `
		SELECT id, email, token, created_at
		FROM account_registration
		WHERE token = $1
	`
	var registration model.AccountRegistration
	err := db.Pool.QueryRow(ctx, query, token).Scan(
		&registration.ID,
		&registration.Email,
		&registration.Token,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// RegistrationByEmailAndToken resolves a pending registration only when both
// values match, which guards a token against reuse with another email.
func (db *Postgres) RegistrationByEmailAndToken(ctx context.Context, email, token string) (*model.AccountRegistration, error) {
	query := `
		SELECT id, email, token, created_at
		FROM account_registration
		WHERE email = $1 AND token = $2
	`
	var registration model.AccountRegistration
	err := db.Pool.QueryRow(ctx, query, email, token).Scan(
		&registration.ID,
		&registration.Email,
		&registration.Token,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}
