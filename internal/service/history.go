package service

import (
	"fmt"
	"time"

	"englex/internal/domain"
	"englex/internal/repository"
)

// DaysPageSize is the number of study days per page
const DaysPageSize = 7

// HistoryService shows what a learner studied and when
type HistoryService struct {
	ledger repository.LedgerRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(ledger repository.LedgerRepository) *HistoryService {
	return &HistoryService{ledger: ledger}
}

// GetDaysList returns one page of study days and the total page count
func (s *HistoryService) GetDaysList(userID int64, page int) ([]domain.StudyDay, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * DaysPageSize
	days, err := s.ledger.GetStudyDays(userID, DaysPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.ledger.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + DaysPageSize - 1) / DaysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetWordsByDate returns the words studied on a day given as YYYYMMDD
func (s *HistoryService) GetWordsByDate(userID int64, dateStr string) ([]domain.StudiedWord, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.ledger.GetWordsByDate(userID, date)
}
