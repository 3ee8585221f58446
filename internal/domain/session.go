package domain

// QuizSession is the state of one learner's run through a level
type QuizSession struct {
	Level   Level
	Pool    []string
	Current *WordEntry
}

// Done reports whether there is nothing left to ask
func (s QuizSession) Done() bool {
	return s.Current == nil
}

// Advance returns the session with the current word removed from the pool.
// The returned session has no Current entry; the caller loads the next one.
func (s QuizSession) Advance() QuizSession {
	next := QuizSession{Level: s.Level, Pool: make([]string, 0, len(s.Pool))}
	for _, w := range s.Pool {
		if s.Current != nil && w == s.Current.Word {
			continue
		}
		next.Pool = append(next.Pool, w)
	}
	return next
}

// NextWord returns the head of the pool
func (s QuizSession) NextWord() (string, bool) {
	if len(s.Pool) == 0 {
		return "", false
	}
	return s.Pool[0], true
}

// AnswerResult is the outcome of submitting one answer
type AnswerResult struct {
	Correct bool
	// Revealed is the entry the learner got wrong; nil when Correct
	Revealed *WordEntry
	Session  QuizSession
}
