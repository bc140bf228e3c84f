package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRefreshToken(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	expiration := time.Now().Add(2160 * time.Hour)
	mock.ExpectQuery(`INSERT INTO refresh_token`).
		WithArgs("signed.jwt.value", int64(4), expiration).
		WillReturnRows(pgxmock.NewRows([]string{"id", "token", "account_id", "expiration_date"}).
			AddRow(int64(1), "signed.jwt.value", int64(4), expiration))

	token, err := store.InsertRefreshToken(context.Background(), "signed.jwt.value", 4, expiration)
	require.NoError(t, err)
	assert.Equal(t, int64(1), token.ID)
	assert.Equal(t, "signed.jwt.value", token.Token)
}

func TestRefreshTokenByJWTExactMatch(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectQuery(`FROM refresh_token\s+WHERE token = \$1`).
		WithArgs("unknown.jwt.value").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.RefreshTokenByJWT(context.Background(), "unknown.jwt.value")
	assert.True(t, IsNoRows(err))
}

func TestDeleteRefreshToken(t *testing.T) {
	store, mock := newStore(t)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM refresh_token\s+WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.DeleteRefreshToken(context.Background(), 1))
}
