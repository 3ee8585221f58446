package quiz

import (
	"regexp"
	"strings"
)

var segmentSep = regexp.MustCompile(`[,;]\s*`)

// Normalize trims and lower-cases an answer for comparison
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate reports whether input matches any accepted answer.
//
// Matching is deliberately loose:
//   - an accepted answer contained in the input, or the input contained in it
//   - a comma/semicolon separated segment of an accepted answer equal to the
//     whole input or to one of its words
//
// Blank input and blank accepted answers never match.
func Evaluate(input string, accepted []string) bool {
	answer := Normalize(input)
	if answer == "" {
		return false
	}
	tokens := strings.Fields(answer)

	for _, a := range accepted {
		candidate := Normalize(a)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, answer) || strings.Contains(answer, candidate) {
			return true
		}
		if matchesSegment(candidate, answer, tokens) {
			return true
		}
	}
	return false
}

func matchesSegment(candidate, answer string, tokens []string) bool {
	for _, segment := range segmentSep.Split(candidate, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if segment == answer {
			return true
		}
		for _, tok := range tokens {
			if tok == segment {
				return true
			}
		}
	}
	return false
}
