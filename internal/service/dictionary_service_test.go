package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "wordvault/internal/errors"
	"wordvault/internal/logging"
	"wordvault/internal/model"
)

var (
	admin   = &model.User{ID: 1, Email: "admin@example.com", IsAdmin: true}
	regular = &model.User{ID: 2, Email: "user@example.com"}
)

func TestDictionaryService_AddWord(t *testing.T) {
	tests := []struct {
		name            string
		actor           *model.User
		word            string
		definition      string
		setupMock       func(*MockDictionaryRepository)
		expectedOutcome Outcome
		expectedError   error
	}{
		{
			name:       "admin adds new entry",
			actor:      admin,
			word:       "cat",
			definition: "a feline",
			setupMock: func(m *MockDictionaryRepository) {
				m.On("Exists", mock.Anything, "cat", "a feline").Return(false, nil)
				m.On("Create", mock.Anything, &model.DictionaryEntry{Word: "cat", Definition: "a feline"}).Return(nil)
			},
			expectedOutcome: OutcomeCreated,
		},
		{
			name:       "identical pair exists",
			actor:      admin,
			word:       "cat",
			definition: "a feline",
			setupMock: func(m *MockDictionaryRepository) {
				m.On("Exists", mock.Anything, "cat", "a feline").Return(true, nil)
			},
			expectedOutcome: OutcomeAlreadyExists,
		},
		{
			name:       "duplicate detected on insert",
			actor:      admin,
			word:       "cat",
			definition: "a feline",
			setupMock: func(m *MockDictionaryRepository) {
				m.On("Exists", mock.Anything, "cat", "a feline").Return(false, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedOutcome: OutcomeAlreadyExists,
		},
		{
			name:          "non-admin rejected",
			actor:         regular,
			word:          "cat",
			definition:    "a feline",
			setupMock:     func(m *MockDictionaryRepository) {},
			expectedError: apperrors.ErrNotAuthorized,
		},
		{
			name:          "non-admin rejected before field checks",
			actor:         regular,
			setupMock:     func(m *MockDictionaryRepository) {},
			expectedError: apperrors.ErrNotAuthorized,
		},
		{
			name:          "missing definition",
			actor:         admin,
			word:          "cat",
			setupMock:     func(m *MockDictionaryRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDictionaryRepository)
			tt.setupMock(mockRepo)

			svc := NewDictionaryService(mockRepo, nil, logging.Discard())
			outcome, err := svc.AddWord(context.Background(), tt.actor, tt.word, tt.definition)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOutcome, outcome)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_RemoveWord(t *testing.T) {
	tests := []struct {
		name            string
		actor           *model.User
		word            string
		setupMock       func(*MockDictionaryRepository)
		expectedOutcome Outcome
		expectedRemoved int64
		expectedError   error
	}{
		{
			name:  "removes every definition",
			actor: admin,
			word:  "cat",
			setupMock: func(m *MockDictionaryRepository) {
				m.On("DeleteByWord", mock.Anything, "cat").Return(int64(3), nil)
			},
			expectedOutcome: OutcomeRemoved,
			expectedRemoved: 3,
		},
		{
			name:  "unknown word",
			actor: admin,
			word:  "dog",
			setupMock: func(m *MockDictionaryRepository) {
				m.On("DeleteByWord", mock.Anything, "dog").Return(int64(0), nil)
			},
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:          "non-admin rejected",
			actor:         regular,
			word:          "cat",
			setupMock:     func(m *MockDictionaryRepository) {},
			expectedError: apperrors.ErrNotAuthorized,
		},
		{
			name:          "missing word",
			actor:         admin,
			setupMock:     func(m *MockDictionaryRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDictionaryRepository)
			tt.setupMock(mockRepo)

			svc := NewDictionaryService(mockRepo, nil, logging.Discard())
			outcome, removed, err := svc.RemoveWord(context.Background(), tt.actor, tt.word)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOutcome, outcome)
				assert.Equal(t, tt.expectedRemoved, removed)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_Search(t *testing.T) {
	mockRepo := new(MockDictionaryRepository)
	mockRepo.On("FindByWord", mock.Anything, "cat").Return([]model.DictionaryEntry{
		{Word: "cat", Definition: "a feline"},
		{Word: "cat", Definition: "a jazz musician"},
	}, nil)
	mockRepo.On("FindByWord", mock.Anything, "dog").Return([]model.DictionaryEntry{}, nil)

	svc := NewDictionaryService(mockRepo, nil, logging.Discard())

	defs, err := svc.Search(context.Background(), "cat")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a feline", "a jazz musician"}, defs)

	defs, err = svc.Search(context.Background(), "dog")
	assert.NoError(t, err)
	assert.Empty(t, defs)

	_, err = svc.Search(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)

	mockRepo.AssertExpectations(t)
}
