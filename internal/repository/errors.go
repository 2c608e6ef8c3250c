// Package repository defines error types that are reused across the
// repository layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific error strings themselves. For example,
// ErrEmailExists indicates that a registration lost the race on the
// unique email index, while ErrAccountNotFound signals that a lookup
// matched no row.
package repository

import "errors"

// ErrEmailExists is returned when an insert violates the unique index on
// accounts.email. Handlers should translate this into an HTTP 400
// response naming the conflicting email.
var ErrEmailExists = errors.New("email already exists")

// ErrAccountNotFound is returned when a lookup by id or email matches no
// account. For claims resolution handlers translate this into an HTTP
// 400 response; for login it must collapse into the generic
// invalid-credentials answer so the response does not reveal whether
// the email is registered.
var ErrAccountNotFound = errors.New("account not found")
