package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/auth-claims-service/internal/model"
	"github.com/iliyamo/auth-claims-service/internal/utils"
)

// AccountRepo reads and writes the 'accounts' table and its permission
// associations. Email comparison is case-insensitive: addresses are
// lower-cased and trimmed here, at the storage boundary, before every
// insert and lookup, so the unique index operates on the normalized form.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// NormalizeEmail applies the repository's email policy. Handlers use it
// too so that confirmation fields are compared under the same rules.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create hashes the password, inserts the account and returns its ID.
// The plaintext never reaches the database. A duplicate email surfaces
// as ErrEmailExists whether it is caught here or by the unique index
// when two registrations race.
func (r *AccountRepo) Create(ctx context.Context, email, password, name string, cost int) (uint64, error) {
	email = NormalizeEmail(email)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (email, password_hash, name) VALUES (?,?,?)",
		email, hash, name)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by normalized email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = NormalizeEmail(email)
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,created_at FROM accounts WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,created_at FROM accounts WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}

// Permissions returns the names of all permissions granted to an account
// through the account_permissions join table. The result is an empty,
// non-nil slice when the account holds no grants, so callers serialize
// it as [] rather than null.
func (r *AccountRepo) Permissions(ctx context.Context, accountID uint64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT p.name FROM permissions p JOIN account_permissions ap ON ap.permission_id=p.id WHERE ap.account_id=? ORDER BY p.name",
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
