package model

import "time"

// Account represents a registered identity as stored in the `accounts`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types so that the
// password hash can never leak into a response body.
//
// Fields:
//  ID           – primary key identifier, assigned by the database on insert.
//  Email        – unique email address, stored lower‑cased and trimmed.
//  PasswordHash – bcrypt hashed password; the plaintext is never persisted.
//  Name         – display name shown back to the account owner.
//  CreatedAt    – timestamp of creation.
type Account struct {
    ID           uint64    // accounts.id
    Email        string    // accounts.email
    PasswordHash string    // accounts.password_hash
    Name         string    // accounts.name
    CreatedAt    time.Time // accounts.created_at
}

// Permission represents a row in the `permissions` table.  Permissions are
// created and managed outside this service; the core only ever reads them.
//
// Fields:
//  ID   – numeric identifier of the permission.
//  Name – unique capability name (e.g. "reports.read").
type Permission struct {
    ID   uint64 // permissions.id
    Name string // permissions.name
}

// AccountPermission models an entry in the `account_permissions` join
// table.  The pair (AccountID, PermissionID) forms the composite primary
// key, so an account can hold a given permission at most once.
type AccountPermission struct {
    AccountID    uint64 // account_permissions.account_id
    PermissionID uint64 // account_permissions.permission_id
}
