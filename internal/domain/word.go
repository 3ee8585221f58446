package domain

import "time"

// WordEntry is everything the quiz knows about one source word.
// It is built once when the word is fetched and not modified afterwards.
type WordEntry struct {
	Word              string   `json:"word"`
	Translation       string   `json:"translation"`
	Synonyms          []string `json:"synonyms"`
	AcceptedAnswers   []string `json:"accepted_answers"`
	TranslationSource Source   `json:"translation_source"`
	SynonymSource     Source   `json:"synonym_source"`
}

// StudiedWord is a single ledger row
type StudiedWord struct {
	UserID    int64
	Word      string
	Level     Level
	StudiedAt time.Time
}
