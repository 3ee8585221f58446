package service

import (
	"fmt"
	"testing"
	"time"

	"englex/internal/domain"
	"englex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_GetDaysList(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		page           int
		expectedOffset int
		totalDays      int
		expectedPages  int
	}{
		{name: "first page", page: 1, expectedOffset: 0, totalDays: 3, expectedPages: 1},
		{name: "page below one", page: 0, expectedOffset: 0, totalDays: 0, expectedPages: 1},
		{name: "second page", page: 2, expectedOffset: 7, totalDays: 15, expectedPages: 3},
		{name: "exact multiple", page: 2, expectedOffset: 7, totalDays: 14, expectedPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := []domain.StudyDay{testutil.NewTestStudyDay(day, 4)}

			mockLedger := new(testutil.MockLedgerRepository)
			mockLedger.On("GetStudyDays", int64(1), DaysPageSize, tt.expectedOffset).Return(days, nil)
			mockLedger.On("GetTotalDaysCount", int64(1)).Return(tt.totalDays, nil)

			service := NewHistoryService(mockLedger)

			result, pages, err := service.GetDaysList(1, tt.page)

			require.NoError(t, err)
			assert.Equal(t, days, result)
			assert.Equal(t, tt.expectedPages, pages)
			mockLedger.AssertExpectations(t)
		})
	}
}

func TestHistoryService_GetDaysList_Error(t *testing.T) {
	mockLedger := new(testutil.MockLedgerRepository)
	mockLedger.On("GetStudyDays", int64(1), DaysPageSize, 0).Return(nil, fmt.Errorf("db error"))

	service := NewHistoryService(mockLedger)

	_, _, err := service.GetDaysList(1, 1)

	assert.Error(t, err)
}

func TestHistoryService_GetWordsByDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		words := []domain.StudiedWord{testutil.NewTestStudiedWord(1, "run", domain.LevelA1)}

		mockLedger := new(testutil.MockLedgerRepository)
		mockLedger.On("GetWordsByDate", int64(1), date).Return(words, nil)

		service := NewHistoryService(mockLedger)

		result, err := service.GetWordsByDate(1, "20240510")

		require.NoError(t, err)
		assert.Equal(t, words, result)
		mockLedger.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		service := NewHistoryService(new(testutil.MockLedgerRepository))

		_, err := service.GetWordsByDate(1, "2024-05-10")

		assert.Error(t, err)
	})
}
