// Package queue defines message payloads exchanged over the message broker.
package queue

// AccountRegisteredEvent is published when a registration commits.  It
// contains enough information for downstream consumers to log, send a
// welcome notification, or trigger analytics without querying the primary
// database.  The password hash is deliberately absent.
type AccountRegisteredEvent struct {
    AccountID    uint64 `json:"account_id"`
    Email        string `json:"email"`
    Name         string `json:"name"`
    RegisteredAt string `json:"registered_at"`
}
