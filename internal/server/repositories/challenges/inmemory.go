package challenges

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/credentials"
	"github.com/google/uuid"
)

const maxIDAttempts = 8

// ScalarSource draws a challenge scalar uniformly from [0, n).
type ScalarSource func(n uint64) (uint64, error)

// IDSource returns a fresh unguessable auth_id.
type IDSource func() (string, error)

// InMemoryRepository is a Repository over sync.Map. Operations on
// different auth_ids do not share a lock.
type InMemoryRepository struct {
	users   credentials.Repository
	order   uint64
	scalars ScalarSource
	ids     IDSource
	now     func() time.Time

	entries sync.Map // auth_id -> *models.Challenge
	count   atomic.Int64
}

// NewInMemoryRepository returns a ledger that validates usernames against
// users and draws challenge scalars from [0, order).
func NewInMemoryRepository(users credentials.Repository, order uint64) *InMemoryRepository {
	return &InMemoryRepository{
		users:   users,
		order:   order,
		scalars: common.RandUint64N,
		ids:     newAuthID,
		now:     time.Now,
	}
}

func newAuthID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, userName string, r1, r2 uint64) (*models.Challenge, error) {
	if _, err := r.users.Lookup(ctx, userName); err != nil {
		return nil, err
	}

	c, err := r.scalars(r.order)
	if err != nil {
		return nil, fmt.Errorf("error drawing challenge: %w", err)
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		authID, err := r.ids()
		if err != nil {
			return nil, fmt.Errorf("error generating auth id: %w", err)
		}

		ch := &models.Challenge{
			AuthID:   authID,
			UserName: userName,
			R1:       r1,
			R2:       r2,
			C:        c,
			IssuedAt: r.now(),
		}

		if _, loaded := r.entries.LoadOrStore(authID, ch); loaded {
			continue
		}
		r.count.Add(1)

		out := *ch
		return &out, nil
	}

	return nil, fmt.Errorf("error generating auth id: %d collisions", maxIDAttempts)
}

func (r *InMemoryRepository) Consume(ctx context.Context, authID string) (*models.Challenge, error) {
	v, ok := r.entries.LoadAndDelete(authID)
	if !ok {
		return nil, common.ErrChallengeNotFound
	}
	r.count.Add(-1)

	ch := *v.(*models.Challenge)
	return &ch, nil
}

func (r *InMemoryRepository) Len() int {
	return int(r.count.Load())
}
