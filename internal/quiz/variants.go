package quiz

import "strings"

// suffixRule rewrites an infinitive ending into present-tense endings
type suffixRule struct {
	suffix  string
	endings []string
}

var suffixRules = []suffixRule{
	{suffix: "ать", endings: []string{"аю", "аешь", "ает"}},
	{suffix: "ить", endings: []string{"ю", "ишь", "ит"}},
}

// Variants returns every string that should count as a correct answer for
// translation. The result always starts with translation itself; duplicates
// are removed by exact comparison. Unknown or empty input yields a singleton.
func Variants(translation, sourceWord string) []string {
	variants := []string{translation}

	for _, rule := range suffixRules {
		if !strings.HasSuffix(translation, rule.suffix) {
			continue
		}
		stem := strings.TrimSuffix(translation, rule.suffix)
		for _, ending := range rule.endings {
			variants = append(variants, stem+ending)
		}
	}

	variants = append(variants, OverrideForms(translation, sourceWord)...)

	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// AcceptedAnswers is Variants normalized for comparison: trimmed, lower-cased,
// blanks dropped and duplicates removed.
func AcceptedAnswers(translation, sourceWord string) []string {
	variants := Variants(translation, sourceWord)
	normalized := make([]string, 0, len(variants))
	for _, v := range variants {
		if n := Normalize(v); n != "" {
			normalized = append(normalized, n)
		}
	}
	return dedupe(normalized)
}
