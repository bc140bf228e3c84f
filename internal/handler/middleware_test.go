package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aveslog/backend/internal/config"
	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStoreMock(t *testing.T) (*db.Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &db.Postgres{Pool: mock}, mock
}

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret",
		JWTAccessTTL:  "30m",
		JWTRefreshTTL: "2160h",
	})
	require.NoError(t, err)
	return tokens
}

func accountRows(id int64, username, email string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "username", "email", "birder_id", "created_at"}).
		AddRow(id, username, email, id, time.Now())
}

// guardedRouter mounts a trivial protected route.
func guardedRouter(auth *service.AuthService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", RequireAuthentication(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetAuthAccount(c).Username})
	})
	return router
}

func errorCode(t *testing.T, body []byte) int {
	t.Helper()
	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Code
}

func TestRequireAuthenticationMissingHeader(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	router := guardedRouter(service.NewAuthService(store, newTokens(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int(errcode.AuthorizationRequired), errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthenticationInvalidToken(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	router := guardedRouter(service.NewAuthService(store, newTokens(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("accessToken", "not.a.jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int(errcode.AccessTokenInvalid), errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthenticationExpiredToken(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	tokens := newTokens(t)

	past := time.Now().Add(-2 * time.Hour)
	expired, err := tokens.WithClock(func() time.Time { return past }).CreateAccessToken(4)
	require.NoError(t, err)
	tokens.WithClock(time.Now)

	router := guardedRouter(service.NewAuthService(store, tokens))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("accessToken", expired.JWT)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int(errcode.AccessTokenExpired), errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthenticationAccountGone(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	tokens := newTokens(t)

	access, err := tokens.CreateAccessToken(4)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM account\s+WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	router := guardedRouter(service.NewAuthService(store, tokens))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("accessToken", access.JWT)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int(errcode.AccountMissing), errorCode(t, w.Body.Bytes()))
}

func TestRequireAuthenticationSuccess(t *testing.T) {
	store, mock := newStoreMock(t)
	defer mock.Close()
	tokens := newTokens(t)

	access, err := tokens.CreateAccessToken(4)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM account\s+WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(accountRows(4, "hulot", "hulot@example.com"))

	router := guardedRouter(service.NewAuthService(store, tokens))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("accessToken", access.JWT)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"hulot"}`, w.Body.String())
}

func TestRequestIDGeneratedAndHonored(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "supplied-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "supplied-id", w.Header().Get("X-Request-Id"))
}
