package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupSQLStoreMock(t *testing.T) (Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	store := NewSQLStore(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return store, mock, closer
}

func TestSQLStoreSaveReplacesRow(t *testing.T) {
	store, mock, close := setupSQLStoreMock(t)
	defer close()

	now := time.Now().UnixMilli()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth_token")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO auth_token (id, token, user_id, user_email, user_name, expires_at, created_at) VALUES (1, ?, ?, ?, ?, ?, ?)")).
		WithArgs("token-abc", nil, nil, nil, nil, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.Save(context.Background(), AuthSession{Token: "token-abc", CreatedAt: now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreGet(t *testing.T) {
	store, mock, close := setupSQLStoreMock(t)
	defer close()

	now := time.Now().UnixMilli()
	userID := "user_1234"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token, user_id, user_email, user_name, expires_at, created_at FROM auth_token LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "user_email", "user_name", "expires_at", "created_at"}).
			AddRow("token-abc", userID, nil, nil, nil, now))

	sess, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "token-abc", sess.Token)
	require.NotNil(t, sess.UserID)
	require.Equal(t, userID, *sess.UserID)
	require.Nil(t, sess.ExpiresAt)
}

func TestSQLStoreGetNoRow(t *testing.T) {
	store, mock, close := setupSQLStoreMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token, user_id, user_email, user_name, expires_at, created_at FROM auth_token LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "user_email", "user_name", "expires_at", "created_at"}))

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSQLStoreClear(t *testing.T) {
	store, mock, close := setupSQLStoreMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth_token")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreExists(t *testing.T) {
	store, mock, close := setupSQLStoreMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM auth_token)")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := store.Exists(context.Background())
	require.NoError(t, err)
	require.True(t, exists)
}
