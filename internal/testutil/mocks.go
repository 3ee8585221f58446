package testutil

import (
	"context"
	"time"

	"englex/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockLedgerRepository is a mock for LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) GetStudiedWords(userID int64) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerRepository) AddStudiedWord(userID int64, word string, level domain.Level) error {
	args := m.Called(userID, word, level)
	return args.Error(0)
}

func (m *MockLedgerRepository) ResetLevel(userID int64, level domain.Level) (int64, error) {
	args := m.Called(userID, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) GetStudyDays(userID int64, limit, offset int) ([]domain.StudyDay, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudyDay), args.Error(1)
}

func (m *MockLedgerRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) GetWordsByDate(userID int64, date time.Time) ([]domain.StudiedWord, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudiedWord), args.Error(1)
}

// MockTranslationCache is a mock for TranslationCacheRepository
type MockTranslationCache struct {
	mock.Mock
}

func (m *MockTranslationCache) GetTranslation(word string) (string, error) {
	args := m.Called(word)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationCache) SaveTranslation(word, translation string) error {
	args := m.Called(word, translation)
	return args.Error(0)
}

func (m *MockTranslationCache) CleanOldTranslations(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockTranslator is a mock for service.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

// MockSynonymFinder is a mock for service.SynonymFinder
type MockSynonymFinder struct {
	mock.Mock
}

func (m *MockSynonymFinder) Synonyms(ctx context.Context, word string) ([]string, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockFactSource is a mock for service.FactSource
type MockFactSource struct {
	mock.Mock
}

func (m *MockFactSource) RandomFact(ctx context.Context) (domain.Fact, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Fact), args.Error(1)
}

func (m *MockFactSource) NumberFact(ctx context.Context) (domain.Fact, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Fact), args.Error(1)
}
