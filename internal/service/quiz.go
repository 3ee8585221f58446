package service

import (
	"context"
	"errors"
	"fmt"

	"englex/internal/domain"
	"englex/internal/quiz"
	"englex/internal/repository"
	"englex/internal/vocab"

	"go.uber.org/zap"
)

// ErrNoActiveWord is returned when an answer arrives for a finished session
var ErrNoActiveWord = errors.New("no active quiz word")

// WordInfoProvider builds the entry for a quiz word
type WordInfoProvider interface {
	GetWordInfo(ctx context.Context, word string) *domain.WordEntry
}

// QuizService runs a learner through the words of one level
type QuizService struct {
	ledger repository.LedgerRepository
	words  WordInfoProvider
	logger *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(ledger repository.LedgerRepository, words WordInfoProvider, logger *zap.Logger) *QuizService {
	return &QuizService{
		ledger: ledger,
		words:  words,
		logger: logger,
	}
}

// LoadLedger reads the learner's studied words
func (s *QuizService) LoadLedger(userID int64) (domain.StudiedLedger, error) {
	words, err := s.ledger.GetStudiedWords(userID)
	if err != nil {
		return domain.StudiedLedger{}, fmt.Errorf("load studied words: %w", err)
	}
	return domain.NewStudiedLedger(words), nil
}

// StartLevel builds a session from the level's words the learner has not studied
// yet and loads the first of them. A finished level yields a session with no
// current word.
func (s *QuizService) StartLevel(ctx context.Context, userID int64, level domain.Level) (domain.QuizSession, error) {
	ledger, err := s.LoadLedger(userID)
	if err != nil {
		return domain.QuizSession{}, err
	}

	session := domain.QuizSession{
		Level: level,
		Pool:  ledger.FilterPool(vocab.WordsByLevel(level)),
	}

	s.logger.Info("Quiz level started",
		zap.Int64("user_id", userID),
		zap.String("level", string(level)),
		zap.Int("available", len(session.Pool)),
		zap.Int("ledger_version", ledger.Version),
	)

	return s.loadCurrent(ctx, session), nil
}

// SubmitAnswer checks answer against the current word. A correct answer is
// recorded in the ledger and the session moves on; a wrong one reveals the entry.
func (s *QuizService) SubmitAnswer(ctx context.Context, userID int64, session domain.QuizSession, answer string) (*domain.AnswerResult, error) {
	if session.Done() {
		return nil, ErrNoActiveWord
	}
	current := session.Current

	if !quiz.Evaluate(answer, current.AcceptedAnswers) {
		return &domain.AnswerResult{
			Correct:  false,
			Revealed: current,
			Session:  session,
		}, nil
	}

	if err := s.ledger.AddStudiedWord(userID, current.Word, session.Level); err != nil {
		return nil, fmt.Errorf("record studied word %q: %w", current.Word, err)
	}

	s.logger.Info("Word studied",
		zap.Int64("user_id", userID),
		zap.String("word", current.Word),
		zap.String("level", string(session.Level)),
	)

	return &domain.AnswerResult{
		Correct: true,
		Session: s.loadCurrent(ctx, session.Advance()),
	}, nil
}

// Skip moves past the current word without recording it
func (s *QuizService) Skip(ctx context.Context, session domain.QuizSession) domain.QuizSession {
	if session.Done() {
		return session
	}
	return s.loadCurrent(ctx, session.Advance())
}

// ResetLevel forgets the studied words of level so they are asked again
func (s *QuizService) ResetLevel(userID int64, level domain.Level) (int64, error) {
	removed, err := s.ledger.ResetLevel(userID, level)
	if err != nil {
		return 0, fmt.Errorf("reset level %s: %w", level, err)
	}

	s.logger.Info("Level reset",
		zap.Int64("user_id", userID),
		zap.String("level", string(level)),
		zap.Int64("removed", removed),
	)
	return removed, nil
}

func (s *QuizService) loadCurrent(ctx context.Context, session domain.QuizSession) domain.QuizSession {
	word, ok := session.NextWord()
	if !ok {
		session.Current = nil
		return session
	}
	session.Current = s.words.GetWordInfo(ctx, word)
	return session
}
