package db

import "context"

func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS birder (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS account (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			birder_id BIGINT NOT NULL REFERENCES birder(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS hashed_password (
			account_id BIGINT PRIMARY KEY REFERENCES account(id) ON DELETE CASCADE,
			salt TEXT NOT NULL,
			salted_hash TEXT NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS account_registration (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			token TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS password_reset_token (
			account_id BIGINT PRIMARY KEY REFERENCES account(id) ON DELETE CASCADE,
			token TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS refresh_token (
			id BIGSERIAL PRIMARY KEY,
			token TEXT NOT NULL UNIQUE,
			account_id BIGINT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
			expiration_date TIMESTAMPTZ NOT NULL
		)
		`,
		`CREATE INDEX IF NOT EXISTS refresh_token_account_id_idx ON refresh_token(account_id)`,
		`
		CREATE TABLE IF NOT EXISTS bird (
			id BIGSERIAL PRIMARY KEY,
			binomial_name TEXT NOT NULL UNIQUE
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS sighting (
			id BIGSERIAL PRIMARY KEY,
			birder_id BIGINT NOT NULL REFERENCES birder(id),
			bird_id BIGINT NOT NULL REFERENCES bird(id),
			sighting_date DATE NOT NULL,
			sighting_time TIME
		)
		`,
		`CREATE INDEX IF NOT EXISTS sighting_birder_id_idx ON sighting(birder_id)`,
		`
		CREATE TABLE IF NOT EXISTS locale (
			id BIGSERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
