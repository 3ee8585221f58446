package testutil

import (
	"time"

	"englex/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a word entry whose accepted answers are just the translation
func NewTestEntry(word, translation string) *domain.WordEntry {
	return &domain.WordEntry{
		Word:            word,
		Translation:     translation,
		Synonyms:        []string{},
		AcceptedAnswers: []string{translation},
	}
}

// NewTestStudyDay creates a study day
func NewTestStudyDay(date time.Time, studied int) domain.StudyDay {
	return domain.StudyDay{
		Date:    date,
		Studied: studied,
	}
}

// NewTestStudiedWord creates a ledger row studied now
func NewTestStudiedWord(userID int64, word string, level domain.Level) domain.StudiedWord {
	return domain.StudiedWord{
		UserID:    userID,
		Word:      word,
		Level:     level,
		StudiedAt: time.Now(),
	}
}
