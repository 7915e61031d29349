// Package credentials declares the credential store contract and its
// in-memory implementation. The store maps a username to the public
// commitment pair registered for it.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// Repository stores Identity records keyed by username.
type Repository interface {
	// Register inserts or replaces the identity for identity.UserName.
	Register(ctx context.Context, identity *models.Identity) error

	// Lookup returns the identity for userName, or common.ErrUserNotFound.
	Lookup(ctx context.Context, userName string) (*models.Identity, error)

	// Delete removes the identity for userName. Deleting an absent
	// identity is not an error.
	Delete(ctx context.Context, userName string) error
}
