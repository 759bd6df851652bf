package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/renato0307/shed/internal/domain"
)

func setupTestDBWithMock(t *testing.T) (*DocumentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return New(gormDB, heldCredentials{"u1": true}), mock
}

func TestPostgres_QueryFailureMapsToNetworkError(t *testing.T) {
	store, mock := setupTestDBWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "remote_users"`).WillReturnError(errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	user, err := store.GetUser(context.Background(), "u1")
	assert.Nil(t, user)
	require.ErrorIs(t, err, domain.ErrNetwork)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "get user", remoteErr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_BeginFailureMapsToNetworkError(t *testing.T) {
	store, mock := setupTestDBWithMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection reset by peer"))

	err := store.SaveProgress(context.Background(), "u1", "autumn-leaves", domain.ProgressPatch{
		Checklist: map[string]bool{"melody": true},
	})
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_MissingUserReturnsNil(t *testing.T) {
	store, mock := setupTestDBWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "remote_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	user, err := store.GetUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_AuthCheckedBeforeQuery(t *testing.T) {
	store, mock := setupTestDBWithMock(t)

	_, err := store.GetAllProgress(context.Background(), "intruder")
	assert.ErrorIs(t, err, domain.ErrAuth)
	assert.NoError(t, mock.ExpectationsWereMet())
}
