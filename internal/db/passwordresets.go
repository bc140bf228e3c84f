package db

import "context"

// UpsertPasswordResetToken stores a reset token for the account, replacing
// any previous one. An account has at most one live reset token.
func (db *Postgres) UpsertPasswordResetToken(ctx context.Context, accountID int64, token string) error {
	query := `
		INSERT INTO password_reset_token (account_id, token, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (account_id)
		DO UPDATE SET token = EXCLUDED.token, created_at = NOW()
	`
	_, err := db.Pool.Exec(ctx, query, accountID, token)
	return err
}

func (db *Postgres) AccountIDByResetToken(ctx context.Context, token string) (int64, error) {
	query := `
		SELECT account_id
		FROM password_reset_token
		WHERE token = $1
	`
	var accountID int64
	if err := db.Pool.QueryRow(ctx, query, token).Scan(&accountID); err != nil {
		return 0, err
	}
	return accountID, nil
}
