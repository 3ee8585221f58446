package vocab

import "englex/internal/domain"

var wordsByLevel = map[domain.Level][]string{
	domain.LevelA1: {
		"run", "go", "come", "see", "look", "make", "take", "get", "give", "know",
		"think", "say", "find", "want", "use", "work", "call", "try", "need", "feel",
		"good", "bad", "big", "small", "happy", "sad", "hot", "cold", "young", "old",
		"long", "short", "new", "man", "woman", "child", "day", "night", "time", "year",
		"week", "home", "school", "life", "money", "friend", "people", "country", "city",
		"place", "water", "food",
	},
	domain.LevelA2: {
		"weekend", "beautiful", "important", "interesting", "difficult", "easy", "possible",
		"impossible", "necessary", "dangerous", "expensive", "cheap", "healthy", "ill", "tired",
		"hungry", "thirsty", "busy", "free", "ready", "sure", "afraid", "angry", "excited",
		"surprised", "worried", "bored", "interested", "proud", "shy",
	},
	domain.LevelB1: {
		"environment", "technology", "communication", "education", "healthcare", "transportation",
		"entertainment", "politics", "economy", "culture", "history", "science", "nature",
		"society", "future", "success", "failure", "opportunity", "challenge", "experience",
	},
	domain.LevelB2: {
		"sustainable", "innovation", "globalization", "artificial intelligence", "climate change",
		"digital transformation", "entrepreneurship", "leadership", "collaboration", "creativity",
		"critical thinking", "problem solving", "decision making", "time management",
		"stress management",
	},
}

// WordsByLevel returns a copy of the word list for level, or nil for an unknown level
func WordsByLevel(level domain.Level) []string {
	words, ok := wordsByLevel[level]
	if !ok {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}
