// Package repository provides testify mocks of the domain repositories.
package repository

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts its expectations on cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) Find(ctx context.Context, email string) ([]*entity.Account, error) {
	args := m.Called(ctx, email)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, email, password string) (*entity.Account, error) {
	args := m.Called(ctx, email, password)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, id int64, attrs entity.AccountAttrs) (*entity.Account, error) {
	args := m.Called(ctx, id, attrs)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountRepository) Remove(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}
