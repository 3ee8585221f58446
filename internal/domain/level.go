package domain

import "strings"

// Level is a CEFR vocabulary level
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

// Levels lists the selectable levels in display order
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2}

// ParseLevel parses a level name case-insensitively
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, true
		}
	}
	return "", false
}
