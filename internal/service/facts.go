package service

import (
	"context"
	"math/rand"

	"englex/internal/domain"
	"englex/internal/vocab"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultFactsCount is how many facts a refresh shows
const DefaultFactsCount = 4

// FactSource fetches trivia from remote APIs
type FactSource interface {
	RandomFact(ctx context.Context) (domain.Fact, error)
	NumberFact(ctx context.Context) (domain.Fact, error)
}

// FactService assembles a set of facts, alternating general and number trivia
type FactService struct {
	source FactSource
	logger *zap.Logger
	// pick returns an index in [0, n); used to choose fallback facts
	pick func(n int) int
}

// NewFactService creates a new fact service
func NewFactService(source FactSource, logger *zap.Logger) *FactService {
	return &FactService{
		source: source,
		logger: logger,
		pick:   rand.Intn,
	}
}

// GetFacts returns count facts; even positions hold general facts and odd ones
// number facts. Non-positive count means DefaultFactsCount.
func (s *FactService) GetFacts(ctx context.Context, count int) []domain.Result[domain.Fact] {
	if count <= 0 {
		count = DefaultFactsCount
	}

	results := make([]domain.Result[domain.Fact], count)
	var g errgroup.Group
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			if i%2 == 0 {
				results[i] = s.fetch(ctx, s.source.RandomFact, vocab.FallbackFacts)
			} else {
				results[i] = s.fetch(ctx, s.source.NumberFact, vocab.FallbackNumberFacts)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Facts is GetFacts without the source information
func (s *FactService) Facts(ctx context.Context, count int) []domain.Fact {
	results := s.GetFacts(ctx, count)
	facts := make([]domain.Fact, len(results))
	for i, r := range results {
		facts[i] = r.Value
	}
	return facts
}

func (s *FactService) fetch(
	ctx context.Context,
	get func(context.Context) (domain.Fact, error),
	fallback []domain.Fact,
) domain.Result[domain.Fact] {
	fact, err := get(ctx)
	if err != nil {
		s.logger.Info("Fact API failed, using fallback", zap.Error(err))
		return domain.Fallback(fallback[s.pick(len(fallback))], err)
	}
	return domain.Remote(fact)
}
