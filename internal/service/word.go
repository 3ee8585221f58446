package service

import (
	"context"

	"englex/internal/domain"
	"englex/internal/quiz"
	"englex/internal/repository"
	"englex/internal/vocab"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Translator translates an English word into Russian
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// SynonymFinder finds English synonyms of a word
type SynonymFinder interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// WordService builds word entries from the cache, remote APIs and static fallbacks
type WordService struct {
	cache      repository.TranslationCacheRepository
	translator Translator
	synonyms   SynonymFinder
	logger     *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	cache repository.TranslationCacheRepository,
	translator Translator,
	synonyms SynonymFinder,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		cache:      cache,
		translator: translator,
		synonyms:   synonyms,
		logger:     logger,
	}
}

// GetWordInfo returns the full entry for word. It never fails: every lookup
// that goes wrong is replaced by static data.
func (s *WordService) GetWordInfo(ctx context.Context, word string) *domain.WordEntry {
	var (
		translation domain.Result[string]
		synonyms    domain.Result[[]string]
		g           errgroup.Group
	)

	g.Go(func() error {
		translation = s.Translate(ctx, word)
		return nil
	})
	g.Go(func() error {
		synonyms = s.FindSynonyms(ctx, word)
		return nil
	})
	_ = g.Wait()

	return &domain.WordEntry{
		Word:              word,
		Translation:       translation.Value,
		Synonyms:          synonyms.Value,
		AcceptedAnswers:   quiz.AcceptedAnswers(translation.Value, word),
		TranslationSource: translation.Source,
		SynonymSource:     synonyms.Source,
	}
}

// Translate resolves a translation: cache, then remote API, then the built-in dictionary
func (s *WordService) Translate(ctx context.Context, word string) domain.Result[string] {
	cached, err := s.cache.GetTranslation(word)
	if err != nil {
		s.logger.Warn("Failed to read translation cache", zap.String("word", word), zap.Error(err))
	}
	if cached != "" {
		return domain.Cached(cached)
	}

	translation, err := s.translator.Translate(ctx, word)
	if err != nil {
		s.logger.Info("Translation API failed, using fallback",
			zap.String("word", word),
			zap.Error(err),
		)
		return domain.Fallback(vocab.FallbackTranslation(word), err)
	}

	if err := s.cache.SaveTranslation(word, translation); err != nil {
		s.logger.Warn("Failed to cache translation", zap.String("word", word), zap.Error(err))
	}

	return domain.Remote(translation)
}

// FindSynonyms returns synonyms of word, or an empty list when the API fails
func (s *WordService) FindSynonyms(ctx context.Context, word string) domain.Result[[]string] {
	synonyms, err := s.synonyms.Synonyms(ctx, word)
	if err != nil {
		s.logger.Info("Synonyms API failed", zap.String("word", word), zap.Error(err))
		return domain.Fallback([]string{}, err)
	}
	if synonyms == nil {
		synonyms = []string{}
	}
	return domain.Remote(synonyms)
}
