package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/auth-claims-service/internal/config"
)

func TestPermissionCache_PassthroughWithoutRedis(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	// With no Redis client every call must reach the database.
	mock.ExpectQuery(regexp.QuoteMeta(selectPerms)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("reports.read"))
	mock.ExpectQuery(regexp.QuoteMeta(selectPerms)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("reports.read"))

	cache := NewPermissionCache(NewAccountRepo(db), nil, config.PermCacheConfig{Enabled: true})

	for i := 0; i < 2; i++ {
		names, err := cache.Permissions(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"reports.read"}, names)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionCache_DisabledConfig(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectPerms)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	cache := NewPermissionCache(NewAccountRepo(db), nil, config.PermCacheConfig{Enabled: false})
	names, err := cache.Permissions(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, names)
	assert.Empty(t, names)
}
