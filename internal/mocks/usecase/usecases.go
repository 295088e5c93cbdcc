// Package usecase provides testify mocks of the application usecases.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations on cleanup.
func NewMockAuthUsecase(t testingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.SignupOutput)

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.SigninOutput)

	return out, args.Error(1)
}

// MockAccountUsecase is a testify mock of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a mock that asserts its expectations on cleanup.
func NewMockAccountUsecase(t testingT) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) FindAllUsers(ctx context.Context, email string) ([]*entity.Account, error) {
	args := m.Called(ctx, email)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAccountUsecase) FindUser(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountUsecase) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, id, input)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountUsecase) RemoveUser(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}
