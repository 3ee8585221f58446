package domain

// StudiedLedger is the set of source words a learner has answered correctly.
// Values are never mutated in place: Append returns a new ledger with Version bumped.
type StudiedLedger struct {
	Version int
	Words   []string
}

// NewStudiedLedger builds a ledger from persisted words
func NewStudiedLedger(words []string) StudiedLedger {
	w := make([]string, len(words))
	copy(w, words)
	return StudiedLedger{Version: len(w), Words: w}
}

// Contains reports whether word was studied
func (l StudiedLedger) Contains(word string) bool {
	for _, w := range l.Words {
		if w == word {
			return true
		}
	}
	return false
}

// Append returns a ledger that also contains word
func (l StudiedLedger) Append(word string) StudiedLedger {
	if l.Contains(word) {
		return l
	}
	w := make([]string, len(l.Words), len(l.Words)+1)
	copy(w, l.Words)
	return StudiedLedger{Version: l.Version + 1, Words: append(w, word)}
}

// FilterPool returns the words of pool that are not in the ledger, in pool order
func (l StudiedLedger) FilterPool(pool []string) []string {
	studied := make(map[string]struct{}, len(l.Words))
	for _, w := range l.Words {
		studied[w] = struct{}{}
	}

	available := make([]string, 0, len(pool))
	for _, w := range pool {
		if _, ok := studied[w]; !ok {
			available = append(available, w)
		}
	}
	return available
}
