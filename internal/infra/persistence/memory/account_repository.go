// Package memory contains an in-process implementation of the persistence layer.
// It backs local development and doubles as the reference store in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
)

// accountRepository keeps accounts in insertion order. It does not enforce email uniqueness.
type accountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts []*entity.Account
	now      func() time.Time
}

// NewAccountRepository returns an empty in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		nextID: 1,
		now:    time.Now,
	}
}

// Find returns copies of every account whose email equals the given one exactly.
func (repo *accountRepository) Find(_ context.Context, email string) ([]*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matches := make([]*entity.Account, 0, 1)
	for _, account := range repo.accounts {
		if account.Email == email {
			matches = append(matches, cloneAccount(account))
		}
	}

	return matches, nil
}

// Create stores a new account under the next sequential id.
func (repo *accountRepository) Create(_ context.Context, email, password string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	account := &entity.Account{
		ID:        repo.nextID,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.nextID++
	repo.accounts = append(repo.accounts, account)

	return cloneAccount(account), nil
}

// FindByID returns the account with the given id or repository.ErrAccountNotFound.
func (repo *accountRepository) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	idx := repo.indexOf(id)
	if idx < 0 {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(repo.accounts[idx]), nil
}

// Update applies the non-nil attrs in place.
func (repo *accountRepository) Update(_ context.Context, id int64, attrs entity.AccountAttrs) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexOf(id)
	if idx < 0 {
		return nil, repository.ErrAccountNotFound
	}

	account := repo.accounts[idx]
	if attrs.Email != nil {
		account.Email = *attrs.Email
	}
	if attrs.Password != nil {
		account.Password = *attrs.Password
	}
	account.UpdatedAt = repo.now()

	return cloneAccount(account), nil
}

// Remove deletes the account and returns what was stored.
func (repo *accountRepository) Remove(_ context.Context, id int64) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexOf(id)
	if idx < 0 {
		return nil, repository.ErrAccountNotFound
	}

	removed := repo.accounts[idx]
	repo.accounts = append(repo.accounts[:idx], repo.accounts[idx+1:]...)

	return removed, nil
}

// indexOf must be called with mu held.
func (repo *accountRepository) indexOf(id int64) int {
	for i, account := range repo.accounts {
		if account.ID == id {
			return i
		}
	}

	return -1
}

func cloneAccount(account *entity.Account) *entity.Account {
	clone := *account

	return &clone
}
