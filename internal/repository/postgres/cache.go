package postgres

import (
	"database/sql"
	"errors"
)

// TranslationCacheRepo implements repository.TranslationCacheRepository
type TranslationCacheRepo struct {
	db *sql.DB
}

// NewTranslationCacheRepo creates a new translation cache repository
func NewTranslationCacheRepo(db *sql.DB) *TranslationCacheRepo {
	return &TranslationCacheRepo{db: db}
}

// GetTranslation returns the cached translation or "" on a miss
func (r *TranslationCacheRepo) GetTranslation(word string) (string, error) {
	var translation string
	query := `SELECT translation FROM translation_cache WHERE word = $1`
	err := r.db.QueryRow(query, word).Scan(&translation)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return translation, nil
}

// SaveTranslation stores or refreshes a translation
func (r *TranslationCacheRepo) SaveTranslation(word, translation string) error {
	query := `
		INSERT INTO translation_cache (word, translation, fetched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (word)
		DO UPDATE SET translation = EXCLUDED.translation, fetched_at = NOW()
	`
	_, err := r.db.Exec(query, word, translation)
	return err
}

// CleanOldTranslations deletes entries fetched more than days ago
func (r *TranslationCacheRepo) CleanOldTranslations(days int) (int64, error) {
	query := `
		DELETE FROM translation_cache
		WHERE fetched_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
