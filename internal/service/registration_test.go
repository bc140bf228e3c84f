package service

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
	"go.uber.org/zap"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/link"
	"github.com/aveslog/backend/internal/locale"
)

func newStoreMock(t *testing.T) (*db.Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &db.Postgres{Pool: mock}, mock
}

// recordingDispatcher captures outbound mail instead of sending it.
type recordingDispatcher struct {
	recipients []string
	subjects   []string
	bodies     []string
	err        error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, recipient, subject, body string) error {
	if d.err != nil {
		return d.err
	}
	d.recipients = append(d.recipients, recipient)
	d.subjects = append(d.subjects, subject)
	d.bodies = append(d.bodies, body)
	return nil
}

func newRegistrationService(store *db.Postgres, dispatcher *recordingDispatcher) *RegistrationService {
	links := link.NewFactory("http://localhost:3000", "http://localhost:8080")
	return NewRegistrationService(store, dispatcher, links, zap.NewNop())
}

func registrationRows(id int64, email, token string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "token", "created_at"}).
		AddRow(id, email, token, time.Now())
}

func TestInitiateRegistrationRejectsBadEmail(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	_, err := svc.InitiateRegistration(context.Background(), "not-an-email", locale.Empty())
	assert.ErrorIs(t, err, ErrEmailInvalid)
}

func TestInitiateRegistrationRejectsTakenEmail(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`FROM account\s+WHERE email = \$1`).
		WithArgs("taken@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}).
			AddRow(int64(1), "hulot", "taken@example.com", int64(1), time.Now()))

	_, err := svc.InitiateRegistration(context.Background(), "taken@example.com", locale.Empty())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestInitiateRegistrationCreatesAndMails(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	dispatcher := &recordingDispatcher{}
	svc := newRegistrationService(store, dispatcher)

	mock.ExpectQuery(`FROM account\s+WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM account_registration\s+WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO account_registration`).
		WithArgs("new@example.com", pgxmock.AnyArg()).
		WillReturnRows(registrationRows(1, "new@example.com", "abcdef0123456789abcdef0123456789"))

	registration, err := svc.InitiateRegistration(context.Background(), "new@example.com", locale.Empty())
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", registration.Email)

	require.Len(t, dispatcher.recipients, 1)
	assert.Equal(t, "new@example.com", dispatcher.recipients[0])
	assert.Equal(t, "Aveslog Registration", dispatcher.subjects[0])
	assert.Contains(t, dispatcher.bodies[0],
		"http://localhost:3000/authentication/registration/abcdef0123456789abcdef0123456789")
}

func TestInitiateRegistrationReusesPendingRegistration(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	dispatcher := &recordingDispatcher{}
	svc := newRegistrationService(store, dispatcher)

	mock.ExpectQuery(`FROM account\s+WHERE email = \$1`).
		WithArgs("pending@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM account_registration\s+WHERE email = \$1`).
		WithArgs("pending@example.com").
		WillReturnRows(registrationRows(3, "pending@example.com", "existingtoken"))

	registration, err := svc.InitiateRegistration(context.Background(), "pending@example.com", locale.Empty())
	require.NoError(t, err)
	assert.Equal(t, "existingtoken", registration.Token)
	require.Len(t, dispatcher.bodies, 1)
	assert.Contains(t, dispatcher.bodies[0], "existingtoken")
}

func TestInitiateRegistrationReturnsDispatchError(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	dispatcher := &recordingDispatcher{err: errors.New("smtp down")}
	svc := newRegistrationService(store, dispatcher)

	mock.ExpectQuery(`FROM account\s+WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM account_registration\s+WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO account_registration`).
		WithArgs("new@example.com", pgxmock.AnyArg()).
		WillReturnRows(registrationRows(1, "new@example.com", "sometoken"))

	_, err := svc.InitiateRegistration(context.Background(), "new@example.com", locale.Empty())
	assert.EqualError(t, err, "smtp down")
}

func TestPerformRegistrationUnknownToken(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`WHERE email = \$1 AND token = \$2`).
		WithArgs("new@example.com", "wrongtoken").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.PerformRegistration(context.Background(),
		"new@example.com", "wrongtoken", "validname", "validpassword")
	assert.ErrorIs(t, err, ErrRegistrationMissing)
}

func TestPerformRegistrationAggregatesFieldErrors(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`WHERE email = \$1 AND token = \$2`).
		WithArgs("new@example.com", "sometoken").
		WillReturnRows(registrationRows(1, "new@example.com", "sometoken"))

	_, err := svc.PerformRegistration(context.Background(),
		"new@example.com", "sometoken", "Bad Name", "short")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.True(t, validation.InvalidUsername)
	assert.True(t, validation.InvalidPassword)
}

func TestPerformRegistrationUsernameTaken(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`WHERE email = \$1 AND token = \$2`).
		WithArgs("new@example.com", "sometoken").
		WillReturnRows(registrationRows(1, "new@example.com", "sometoken"))
	mock.ExpectQuery(`FROM account\s+WHERE username = \$1`).
		WithArgs("takenname").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}).
			AddRow(int64(9), "takenname", "other@example.com", int64(9), time.Now()))

	_, err := svc.PerformRegistration(context.Background(),
		"new@example.com", "sometoken", "takenname", "validpassword")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestPerformRegistrationCreatesAccount(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`WHERE email = \$1 AND token = \$2`).
		WithArgs("new@example.com", "sometoken").
		WillReturnRows(registrationRows(1, "new@example.com", "sometoken"))
	mock.ExpectQuery(`FROM account\s+WHERE username = \$1`).
		WithArgs("newbirder").
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO birder`).
		WithArgs("newbirder").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO account`).
		WithArgs("newbirder", "new@example.com", int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}).
			AddRow(int64(7), "newbirder", "new@example.com", int64(5), time.Now()))
	mock.ExpectExec(`INSERT INTO hashed_password`).
		WithArgs(int64(7), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM account_registration`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	account, err := svc.PerformRegistration(context.Background(),
		"new@example.com", "sometoken", "newbirder", "validpassword")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, int64(5), account.BirderID)
}

func TestPerformRegistrationUsernameRace(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	svc := newRegistrationService(store, &recordingDispatcher{})

	mock.ExpectQuery(`WHERE email = \$1 AND token = \$2`).
		WithArgs("new@example.com", "sometoken").
		WillReturnRows(registrationRows(1, "new@example.com", "sometoken"))
	mock.ExpectQuery(`FROM account\s+WHERE username = \$1`).
		WithArgs("newbirder").
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO birder`).
		WithArgs("newbirder").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO account`).
		WithArgs("newbirder", "new@example.com", int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := svc.PerformRegistration(context.Background(),
		"new@example.com", "sometoken", "newbirder", "validpassword")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUsernameAndPasswordFormats(t *testing.T) {
	assert.True(t, IsValidUsername("valid_name-1.2"))
	assert.False(t, IsValidUsername("abcd"))
	assert.False(t, IsValidUsername("UpperCase"))
	assert.False(t, IsValidUsername("has space"))

	assert.True(t, IsValidPassword("12345678"))
	assert.False(t, IsValidPassword("1234567"))
}
