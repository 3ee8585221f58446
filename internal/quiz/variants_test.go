package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		sourceWord  string
		contains    []string
		notContains []string
	}{
		{
			name:        "irregular verb from override table",
			translation: "находить",
			sourceWord:  "find",
			contains:    []string{"находить", "найти", "нашел", "нашла", "нашли", "найди", "находишь", "находит"},
		},
		{
			name:        "ать verb conjugation",
			translation: "думать",
			sourceWord:  "think",
			contains:    []string{"думать", "думаю", "думаешь", "думает"},
		},
		{
			name:        "ить verb conjugation",
			translation: "звонить",
			sourceWord:  "call",
			contains:    []string{"звонить", "звоню", "звонишь", "звонит", "позвонить", "позвони"},
		},
		{
			name:        "non verb is left alone",
			translation: "хороший",
			sourceWord:  "good",
			contains:    []string{"хороший"},
			notContains: []string{"хорошаю"},
		},
		{
			name:        "source alias widens a remote translation",
			translation: "найти",
			sourceWord:  "find",
			contains:    []string{"найти", "находить", "нашла"},
		},
		{
			name:        "unknown source word adds nothing",
			translation: "время",
			sourceWord:  "time",
			contains:    []string{"время"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Variants(tt.translation, tt.sourceWord)
			for _, want := range tt.contains {
				assert.Contains(t, result, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, result, unwanted)
			}
		})
	}
}

func TestVariants_AlwaysStartsWithTranslation(t *testing.T) {
	for _, translation := range []string{"бегать", "идти", "дом", "", "run (перевод не найден)"} {
		result := Variants(translation, "")
		assert.NotEmpty(t, result)
		assert.Equal(t, translation, result[0])
	}
}

func TestVariants_UnknownInputIsSingleton(t *testing.T) {
	assert.Equal(t, []string{""}, Variants("", ""))
	assert.Equal(t, []string{"дом"}, Variants("дом", "home"))
}

func TestVariants_NoDuplicates(t *testing.T) {
	// находить lists ищу/ищет in its overrides, and the ить rule runs too
	result := Variants("находить", "find")

	seen := map[string]bool{}
	for _, v := range result {
		assert.False(t, seen[v], "duplicate %q", v)
		seen[v] = true
	}
}

func TestVariants_Deterministic(t *testing.T) {
	for translation := range Overrides {
		assert.Equal(t, Variants(translation, ""), Variants(translation, ""))
	}
}

func TestOverrides_EveryEntryIsReachable(t *testing.T) {
	for key, forms := range Overrides {
		t.Run(key, func(t *testing.T) {
			assert.NotEmpty(t, forms)
			result := Variants(key, "")
			for _, f := range forms {
				assert.Contains(t, result, f)
			}
		})
	}
}

func TestSourceAliases_PointAtOverrides(t *testing.T) {
	for source, key := range SourceAliases {
		_, ok := Overrides[key]
		assert.True(t, ok, "alias %q points at missing override %q", source, key)
	}
}

func TestAcceptedAnswers(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		sourceWord  string
		expected    []string
	}{
		{
			name:        "normalizes remote casing",
			translation: " Дом ",
			sourceWord:  "home",
			expected:    []string{"дом"},
		},
		{
			name:        "empty translation gives empty set",
			translation: "",
			sourceWord:  "x",
			expected:    []string{},
		},
		{
			name:        "case variants collapse",
			translation: "Думать",
			sourceWord:  "think",
			expected:    []string{"думать", "думаю", "думаешь", "думает"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AcceptedAnswers(tt.translation, tt.sourceWord))
		})
	}
}
