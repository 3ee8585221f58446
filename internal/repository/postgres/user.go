package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized; unknown users are not
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check authorization of %d: %w", userID, err)
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("authorize %d: %w", userID, err)
	}
	return nil
}

// EnsureUserExists creates an unauthorized user row if there is none
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("ensure user %d: %w", userID, err)
	}
	return nil
}
