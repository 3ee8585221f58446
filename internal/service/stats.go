package service

import (
	"englex/internal/repository"

	"go.uber.org/zap"
)

// CacheRetentionDays is how long a cached translation stays fresh
const CacheRetentionDays = 30

// StatsService handles periodic maintenance of stored data
type StatsService struct {
	cache  repository.TranslationCacheRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(cache repository.TranslationCacheRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		cache:  cache,
		logger: logger,
	}
}

// CleanupOldData removes cached translations older than CacheRetentionDays
// so remote corrections eventually replace them
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of translation cache", zap.Int("retention_days", CacheRetentionDays))

	removed, err := s.cache.CleanOldTranslations(CacheRetentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup translation cache", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
