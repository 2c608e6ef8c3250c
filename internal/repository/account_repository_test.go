package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

const (
	selectByEmail = "SELECT id,email,password_hash,name,created_at FROM accounts WHERE email=? LIMIT 1"
	selectByID    = "SELECT id,email,password_hash,name,created_at FROM accounts WHERE id=? LIMIT 1"
	selectPerms   = "SELECT p.name FROM permissions p JOIN account_permissions ap ON ap.permission_id=p.id WHERE ap.account_id=? ORDER BY p.name"
	insertAccount = "INSERT INTO accounts (email, password_hash, name) VALUES (?,?,?)"
)

func accountRow(id uint64, email, hash, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow(id, email, hash, name, time.Now().UTC())
}

func TestAccountRepo_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertAccount)).
		WithArgs("a@x.com", sqlmock.AnyArg(), "A").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewAccountRepo(db)
	id, err := repo.Create(context.Background(), " A@X.com ", "secret", "A", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Create_DuplicateKey(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	// The driver reports a lost uniqueness race as MySQL error 1062.
	mock.ExpectExec(regexp.QuoteMeta(insertAccount)).
		WithArgs("a@x.com", sqlmock.AnyArg(), "A").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_accounts_email'"))

	repo := NewAccountRepo(db)
	_, err := repo.Create(context.Background(), "a@x.com", "secret", "A", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAccountRepo_GetByEmail_Normalizes(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
		WithArgs("a@x.com").
		WillReturnRows(accountRow(7, "a@x.com", string(hash), "A"))

	repo := NewAccountRepo(db)
	a, err := repo.GetByEmail(context.Background(), "  A@X.COM ")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), a.ID)
	assert.Equal(t, "a@x.com", a.Email)
	assert.Equal(t, "A", a.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByEmail_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewAccountRepo(db)
	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectByID)).
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	repo := NewAccountRepo(db)
	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepo_Permissions(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectPerms)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("reports.read").
			AddRow("reports.write"))

	repo := NewAccountRepo(db)
	names, err := repo.Permissions(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"reports.read", "reports.write"}, names)
}

func TestAccountRepo_Permissions_EmptyIsNonNil(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectPerms)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	repo := NewAccountRepo(db)
	names, err := repo.Permissions(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, names)
	assert.Empty(t, names)
}
