package credentials

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// InMemoryRepository keeps identities in a sync.Map, so registrations and
// lookups for different usernames never contend on a shared lock.
// Stored records are copies and are never mutated after insertion.
type InMemoryRepository struct {
	identities sync.Map // username -> *models.Identity
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Register replaces any previous identity for the same username.
// Re-registration is not authenticated by the old secret.
func (r *InMemoryRepository) Register(ctx context.Context, identity *models.Identity) error {
	stored := *identity
	r.identities.Store(stored.UserName, &stored)
	return nil
}

func (r *InMemoryRepository) Lookup(ctx context.Context, userName string) (*models.Identity, error) {
	v, ok := r.identities.Load(userName)
	if !ok {
		return nil, common.ErrUserNotFound
	}
	identity := *v.(*models.Identity)
	return &identity, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userName string) error {
	r.identities.Delete(userName)
	return nil
}
