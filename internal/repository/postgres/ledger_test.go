package postgres

import (
	"fmt"
	"testing"
	"time"

	"englex/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLedgerRepo_GetStudiedWords(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      []string
		expectedError bool
	}{
		{
			name:     "words found",
			mockRows: sqlmock.NewRows([]string{"word"}).AddRow("run").AddRow("go"),
			expected: []string{"run", "go"},
		},
		{
			name:     "empty ledger",
			mockRows: sqlmock.NewRows([]string{"word"}),
			expected: nil,
		},
		{
			name:          "query error",
			mockError:     fmt.Errorf("query error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewLedgerRepo(db)
			query := "SELECT word FROM studied_words WHERE user_id = \\$1 ORDER BY studied_at, id"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnRows(tt.mockRows)
			}

			words, err := repo.GetStudiedWords(123)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, words)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedgerRepo_AddStudiedWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	mock.ExpectExec("INSERT INTO studied_words \\(user_id, word, level\\) VALUES \\(\\$1, \\$2, \\$3\\) ON CONFLICT \\(user_id, word\\) DO NOTHING").
		WithArgs(int64(123), "run", "A1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AddStudiedWord(123, "run", domain.LevelA1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ResetLevel(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	mock.ExpectExec("DELETE FROM studied_words WHERE user_id = \\$1 AND level = \\$2").
		WithArgs(int64(123), "B1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.ResetLevel(123, domain.LevelB1)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetStudyDays(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	rows := sqlmock.NewRows([]string{"day", "count"}).
		AddRow(time.Now(), 5).
		AddRow(time.Now().AddDate(0, 0, -1), 3)

	mock.ExpectQuery("SELECT DATE\\(studied_at AT TIME ZONE 'Europe/Moscow'\\) AS day, COUNT\\(\\*\\) AS count FROM studied_words").
		WithArgs(int64(123), 7, 0).
		WillReturnRows(rows)

	days, err := repo.GetStudyDays(123, 7, 0)

	assert.NoError(t, err)
	assert.Len(t, days, 2)
	assert.Equal(t, 5, days[0].Studied)
	assert.Equal(t, 3, days[1].Studied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetStudyDays_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	// Create rows with wrong column type to cause scan error
	rows := sqlmock.NewRows([]string{"day", "count"}).AddRow("invalid", 5)

	mock.ExpectQuery("SELECT DATE\\(studied_at").
		WithArgs(int64(123), 7, 7).
		WillReturnRows(rows)

	days, err := repo.GetStudyDays(123, 7, 7)

	assert.Error(t, err)
	assert.Nil(t, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetTotalDaysCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(DISTINCT DATE\\(studied_at AT TIME ZONE 'Europe/Moscow'\\)\\)").
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))

	count, err := repo.GetTotalDaysCount(123)

	assert.NoError(t, err)
	assert.Equal(t, 14, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetWordsByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	date := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"user_id", "word", "level", "studied_at"}).
		AddRow(int64(123), "run", "A1", date).
		AddRow(int64(123), "weekend", "A2", date)

	mock.ExpectQuery("SELECT user_id, word, level, studied_at FROM studied_words WHERE user_id = \\$1").
		WithArgs(int64(123), sqlmock.AnyArg()).
		WillReturnRows(rows)

	words, err := repo.GetWordsByDate(123, date)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "run", words[0].Word)
	assert.Equal(t, domain.LevelA1, words[0].Level)
	assert.Equal(t, domain.LevelA2, words[1].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetWordsByDate_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepo(db)

	mock.ExpectQuery("SELECT user_id, word, level, studied_at FROM studied_words").
		WithArgs(int64(123), sqlmock.AnyArg()).
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.GetWordsByDate(123, time.Now())

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}
