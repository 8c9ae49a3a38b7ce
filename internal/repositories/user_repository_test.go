package repository_test

import (
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()
	insertSQL := regexp.QuoteMeta(`INSERT INTO users (username, password)`)
	selectSQL := regexp.QuoteMeta(`SELECT username, password FROM users WHERE username = $1`)

	t.Run("CreateUser - Inserted", func(t *testing.T) {
		mock.ExpectExec(insertSQL).WithArgs("alice", "secret").WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateUser(ctx, &models.User{Username: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.True(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser - Already exists", func(t *testing.T) {
		mock.ExpectExec(insertSQL).WithArgs("alice", "other").WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.CreateUser(ctx, &models.User{Username: "alice", Password: "other"})

		require.NoError(t, err)
		assert.False(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUser - Found", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).AddRow("alice", "secret"))

		user, err := repo.GetUser(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, &models.User{Username: "alice", Password: "secret"}, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUser - Not Found", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).WithArgs("bob").WillReturnRows(sqlmock.NewRows([]string{"username", "password"}))

		user, err := repo.GetUser(ctx, "bob")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("GetUser - Store Unavailable", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).WithArgs("bob").WillReturnError(io.ErrUnexpectedEOF)

		_, err := repo.GetUser(ctx, "bob")

		assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	})
}

func TestUnavailableStore(t *testing.T) {
	ctx := t.Context()
	cause := errors.New("dial tcp: connection refused")
	store := repository.NewUnavailableStore(cause)

	_, err := store.GetItem(ctx, "SKU-1")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = store.ListItems(ctx)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = store.FilterByField(ctx, "category", "Golf")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = store.SelectField(ctx, "category")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	assert.ErrorIs(t, store.UpsertItems(ctx, nil), repository.ErrStoreUnavailable)

	_, found, err := store.GetItems(ctx, "user")
	assert.False(t, found)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	assert.ErrorIs(t, store.MergeItems(ctx, "user", map[string]int{"a": 1}), repository.ErrStoreUnavailable)
	assert.ErrorIs(t, store.OverwriteItems(ctx, "user", nil), repository.ErrStoreUnavailable)

	created, err := store.CreateUser(ctx, &models.User{Username: "u"})
	assert.False(t, created)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = store.GetUser(ctx, "u")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	repos := repository.NewUnavailable(cause)
	assert.NoError(t, repos.Close())
}
