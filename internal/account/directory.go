// Package account abstracts the user directory the onboarding pipeline
// creates accounts in. The production deployment delegates to the hosted auth
// service; tests run against the in-memory implementation.
package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by lookups that match no user.
	ErrNotFound = errors.New("account: user not found")
	// ErrEmailTaken signals the directory's email uniqueness constraint.
	ErrEmailTaken = errors.New("account: email already registered")
	// ErrCNPJTaken signals the directory's company uniqueness constraint. A
	// racing registration for the same CNPJ surfaces here rather than being
	// deduplicated upstream.
	ErrCNPJTaken = errors.New("account: cnpj already registered")
)

// Metadata is the company data attached to a user at registration time.
type Metadata struct {
	FantasyName   string
	CorporateName string
	CNPJ          string
}

// User is a directory account.
type User struct {
	ID       uuid.UUID
	Email    string
	Metadata Metadata
}

// NewUser is the creation request. The password is hashed by the directory;
// it is never stored or logged in clear.
type NewUser struct {
	Email    string
	Password string
	Metadata Metadata
}

// Directory provides the two capabilities the registration pipeline needs.
type Directory interface {
	CreateUser(ctx context.Context, req NewUser) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
