package postgres

import (
	"database/sql"
	"time"
	_ "time/tzdata"

	"englex/internal/domain"
)

// studyTimezone decides where a study day starts and ends
const studyTimezone = "Europe/Moscow"

// LedgerRepo implements repository.LedgerRepository
type LedgerRepo struct {
	db *sql.DB
}

// NewLedgerRepo creates a new ledger repository
func NewLedgerRepo(db *sql.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// GetStudiedWords returns every word the user answered correctly, oldest first
func (r *LedgerRepo) GetStudiedWords(userID int64) ([]string, error) {
	query := `
		SELECT word
		FROM studied_words
		WHERE user_id = $1
		ORDER BY studied_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// AddStudiedWord appends a word to the user's ledger; repeats are ignored
func (r *LedgerRepo) AddStudiedWord(userID int64, word string, level domain.Level) error {
	query := `
		INSERT INTO studied_words (user_id, word, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, word) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, word, string(level))
	return err
}

// ResetLevel forgets the studied words of one level and returns how many were removed
func (r *LedgerRepo) ResetLevel(userID int64, level domain.Level) (int64, error) {
	query := `
		DELETE FROM studied_words
		WHERE user_id = $1 AND level = $2
	`
	res, err := r.db.Exec(query, userID, string(level))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetStudyDays returns days with studied words, newest first.
// Days are counted in Moscow time.
func (r *LedgerRepo) GetStudyDays(userID int64, limit, offset int) ([]domain.StudyDay, error) {
	query := `
		SELECT DATE(studied_at AT TIME ZONE 'Europe/Moscow') AS day, COUNT(*) AS count
		FROM studied_words
		WHERE user_id = $1
		GROUP BY DATE(studied_at AT TIME ZONE 'Europe/Moscow')
		ORDER BY day DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.StudyDay
	for rows.Next() {
		var d domain.StudyDay
		if err := rows.Scan(&d.Date, &d.Studied); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns the number of distinct study days
func (r *LedgerRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(studied_at AT TIME ZONE 'Europe/Moscow'))
		FROM studied_words
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetWordsByDate returns the words studied on one Moscow calendar day
func (r *LedgerRepo) GetWordsByDate(userID int64, date time.Time) ([]domain.StudiedWord, error) {
	loc, err := time.LoadLocation(studyTimezone)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	query := `
		SELECT user_id, word, level, studied_at
		FROM studied_words
		WHERE user_id = $1
			AND DATE(studied_at AT TIME ZONE 'Europe/Moscow') = DATE($2 AT TIME ZONE 'Europe/Moscow')
		ORDER BY studied_at DESC
	`

	rows, err := r.db.Query(query, userID, dayStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.StudiedWord
	for rows.Next() {
		var w domain.StudiedWord
		var level string
		if err := rows.Scan(&w.UserID, &w.Word, &level, &w.StudiedAt); err != nil {
			return nil, err
		}
		w.Level = domain.Level(level)
		words = append(words, w)
	}

	return words, rows.Err()
}
