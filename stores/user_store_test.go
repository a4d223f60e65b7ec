package stores

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "session_id", "created_at", "updated_at"}

func TestGormUserStoreCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := NewGormUserStore(db).CreateUser(context.Background(), "Jhon Doe", "jhondoe@email.com", "tok")
	require.NoError(t, err)
	assert.Len(t, user.ID, 36)
	assert.Equal(t, "jhondoe@email.com", user.Email)
	assert.Equal(t, "tok", user.SessionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStoreCreateUserDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("9b2f0c7e-31a4-4c64-8b7e-5f2a39c1d001", "First", "dup@email.com", "other", now, now))

	_, err := NewGormUserStore(db).CreateUser(context.Background(), "Second", "dup@email.com", "tok")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStoreCreateUserDuplicateSession(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := NewGormUserStore(db).CreateUser(context.Background(), "New", "new@email.com", "taken")
	assert.ErrorIs(t, err, ErrDuplicateSession)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStoreCreateUserDuplicateKeyLookupFails(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnError(boom)

	_, err := NewGormUserStore(db).CreateUser(context.Background(), "New", "new@email.com", "taken")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicateSession)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStoreFindBySessionToken(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE session_id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("9b2f0c7e-31a4-4c64-8b7e-5f2a39c1d001", "Alice", "alice@email.com", "tok", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE session_id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	s := NewGormUserStore(db)
	user, err := s.FindBySessionToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = s.FindBySessionToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStorePropagatesStorageErrors(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnError(boom)

	_, err := NewGormUserStore(db).FindByEmail(context.Background(), "a@b.c")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
