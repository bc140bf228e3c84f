package db

import (
	"context"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) AccountByID(ctx context.Context, accountID int64) (*model.Account, error) {
	query := `
		SELECT id, username, email, birder_id, created_at
		FROM account
		WHERE id = $1
	`
	var account model.Account
	err := db.Pool.QueryRow(ctx, query, accountID).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.BirderID,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (db *Postgres) AccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `
		SELECT id, username, email, birder_id, created_at
		FROM account
		WHERE username = $1
	`
	var account model.Account
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.BirderID,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (db *Postgres) AccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `
		SELECT id, username, email, birder_id, created_at
		FROM account
		WHERE email = $1
	`
	var account model.Account
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.BirderID,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (db *Postgres) Accounts(ctx context.Context) ([]model.Account, error) {
	query := `
		SELECT id, username, email, birder_id, created_at
		FROM account
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Email,
			&account.BirderID,
			&account.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	return accounts, rows.Err()
}

func (db *Postgres) BirderByID(ctx context.Context, birderID int64) (*model.Birder, error) {
	query := `
		SELECT id, name
		FROM birder
		WHERE id = $1
	`
	var birder model.Birder
	err := db.Pool.QueryRow(ctx, query, birderID).Scan(&birder.ID, &birder.Name)
	if err != nil {
		return nil, err
	}
	return &birder, nil
}

func (db *Postgres) HashedPassword(ctx context.Context, accountID int64) (*model.HashedPassword, error) {
	query := `
		SELECT account_id, salt, salted_hash
		FROM hashed_password
		WHERE account_id = $1
	`
	var hashed model.HashedPassword
	err := db.Pool.QueryRow(ctx, query, accountID).Scan(
		&hashed.AccountID,
		&hashed.Salt,
		&hashed.SaltedHash,
	)
	if err != nil {
		return nil, err
	}
	return &hashed, nil
}

// CreateAccount creates the birder profile, the account row, its hashed
// password, and deletes the consumed registration in a single transaction.
// A registration row must not survive a successful account creation.
func (db *Postgres) CreateAccount(
	ctx context.Context,
	registrationID int64,
	email, username, salt, saltedHash string,
) (*model.Account, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var birderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO birder (name)
		VALUES ($1)
		RETURNING id
	`, username).Scan(&birderID)
	if err != nil {
		return nil, err
	}

	var account model.Account
	err = tx.QueryRow(ctx, `
		INSERT INTO account (username, email, birder_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, username, email, birder_id, created_at
	`, username, email, birderID).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.BirderID,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO hashed_password (account_id, salt, salted_hash)
		VALUES ($1, $2, $3)
	`, account.ID, salt, saltedHash); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM account_registration
		WHERE id = $1
	`, registrationID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateHashedPassword replaces the stored salt and hash, removes the
// consumed reset token when one is given, and revokes every outstanding
// refresh token of the account, all in one transaction.
func (db *Postgres) UpdateHashedPassword(
	ctx context.Context,
	accountID int64,
	salt, saltedHash string,
	consumedResetToken string,
) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		UPDATE hashed_password
		SET salt = $2, salted_hash = $3
		WHERE account_id = $1
	`, accountID, salt, saltedHash); err != nil {
		return err
	}

	if consumedResetToken != "" {
		if _, err = tx.Exec(ctx, `
			DELETE FROM password_reset_token
			WHERE token = $1
		`, consumedResetToken); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM refresh_token
		WHERE account_id = $1
	`, accountID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
