package domain

import (
	"context"
)

// GuestIdentity is the placeholder ledger owner used when the server runs with
// authentication disabled for local demos.
const GuestIdentity = "guest@localhost"

type LedgerRepository interface {
	// Load returns the stored ledger for identity, or ErrLedgerNotFound.
	Load(ctx context.Context, identity string) (Ledger, error)

	// Save replaces the stored ledger for identity. Concurrent saves for the
	// same identity are last-writer-wins.
	Save(ctx context.Context, identity string, ledger Ledger) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// ListStudents returns student accounts ordered by name then email. An
	// empty class or section matches any.
	ListStudents(ctx context.Context, class, section string) ([]User, error)
}
