package repository

import (
	"time"

	"englex/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// LedgerRepository stores the words each learner has answered correctly
type LedgerRepository interface {
	GetStudiedWords(userID int64) ([]string, error)
	AddStudiedWord(userID int64, word string, level domain.Level) error
	ResetLevel(userID int64, level domain.Level) (int64, error)
	GetStudyDays(userID int64, limit, offset int) ([]domain.StudyDay, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetWordsByDate(userID int64, date time.Time) ([]domain.StudiedWord, error)
}

// TranslationCacheRepository keeps remote translations so repeated words skip the API
type TranslationCacheRepository interface {
	GetTranslation(word string) (string, error)
	SaveTranslation(word, translation string) error
	CleanOldTranslations(days int) (int64, error)
}
