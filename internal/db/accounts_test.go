package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &Postgres{Pool: mock}, mock
}

func TestAccountByEmailNoRows(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectQuery(`FROM account\s+WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.AccountByEmail(context.Background(), "nobody@example.com")
	assert.True(t, IsNoRows(err))
}

func TestAccountsEmptyIsNotNil(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectQuery(`FROM account\s+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}))

	accounts, err := store.Accounts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestCreateAccountCommitsAllOrNothing(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO birder`).
		WithArgs("hulot").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO account`).
		WithArgs("hulot", "hulot@example.com", int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}).
			AddRow(int64(7), "hulot", "hulot@example.com", int64(5), time.Now()))
	mock.ExpectExec(`INSERT INTO hashed_password`).
		WithArgs(int64(7), "somesalt", "somehash").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM account_registration`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	account, err := store.CreateAccount(context.Background(),
		3, "hulot@example.com", "hulot", "somesalt", "somehash")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, int64(5), account.BirderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountRollsBackOnFailure(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO birder`).
		WithArgs("hulot").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO account`).
		WithArgs("hulot", "hulot@example.com", int64(5)).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	_, err := store.CreateAccount(context.Background(),
		3, "hulot@example.com", "hulot", "somesalt", "somehash")
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHashedPasswordWithResetToken(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE hashed_password`).
		WithArgs(int64(4), "newsalt", "newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM password_reset_token`).
		WithArgs("usedtoken").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM refresh_token`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCommit()

	err := store.UpdateHashedPassword(context.Background(), 4, "newsalt", "newhash", "usedtoken")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHashedPasswordWithoutResetToken(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE hashed_password`).
		WithArgs(int64(4), "newsalt", "newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM refresh_token`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectCommit()

	err := store.UpdateHashedPassword(context.Background(), 4, "newsalt", "newhash", "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
