// Package repomanager owns the verifier's stores and hands them to the
// services that are allowed to mutate them.
package repomanager

import (
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/credentials"
)

type RepositoryManager interface {
	Credentials() credentials.Repository
	Challenges() challenges.Repository
}

// InMemoryRepositoryManager keeps both stores in process memory. Nothing
// survives a restart.
type InMemoryRepositoryManager struct {
	credentials *credentials.InMemoryRepository
	challenges  *challenges.InMemoryRepository
}

// NewInMemoryRepositoryManager builds a credential store and a challenge
// ledger that validates usernames against it. Challenge scalars are drawn
// from [0, order).
func NewInMemoryRepositoryManager(order uint64) *InMemoryRepositoryManager {
	creds := credentials.NewInMemoryRepository()
	return &InMemoryRepositoryManager{
		credentials: creds,
		challenges:  challenges.NewInMemoryRepository(creds, order),
	}
}

func (m *InMemoryRepositoryManager) Credentials() credentials.Repository {
	return m.credentials
}

func (m *InMemoryRepositoryManager) Challenges() challenges.Repository {
	return m.challenges
}
