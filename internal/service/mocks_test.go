package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wordvault/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDictionaryRepository is a mock implementation of DictionaryRepository.
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) Create(ctx context.Context, entry *model.DictionaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDictionaryRepository) Exists(ctx context.Context, word, definition string) (bool, error) {
	args := m.Called(ctx, word, definition)
	return args.Bool(0), args.Error(1)
}

func (m *MockDictionaryRepository) FindByWord(ctx context.Context, word string) ([]model.DictionaryEntry, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryRepository) DeleteByWord(ctx context.Context, word string) (int64, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenService is a mock implementation of TokenIssuer and TokenDecoder.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Decode(token string) (uint, error) {
	args := m.Called(token)
	return args.Get(0).(uint), args.Error(1)
}
