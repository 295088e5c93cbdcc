// Package service provides testify mocks of the domain services.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) GenerateSalt() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) HashWithSalt(password, salt string) (string, error) {
	args := m.Called(password, salt)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, record string) (bool, error) {
	args := m.Called(password, record)

	return args.Bool(0), args.Error(1)
}
