package vocab

import "fmt"

var fallbackTranslations = map[string]string{
	"run":     "бегать",
	"go":      "идти",
	"come":    "приходить",
	"see":     "видеть",
	"look":    "смотреть",
	"make":    "делать",
	"take":    "брать",
	"get":     "получать",
	"give":    "давать",
	"know":    "знать",
	"think":   "думать",
	"say":     "сказать",
	"find":    "находить",
	"want":    "хотеть",
	"use":     "использовать",
	"work":    "работать",
	"call":    "звонить",
	"try":     "пытаться",
	"need":    "нуждаться",
	"feel":    "чувствовать",
	"good":    "хороший",
	"bad":     "плохой",
	"big":     "большой",
	"small":   "маленький",
	"happy":   "счастливый",
	"sad":     "грустный",
	"hot":     "горячий",
	"cold":    "холодный",
	"young":   "молодой",
	"old":     "старый",
	"long":    "длинный",
	"short":   "короткий",
	"new":     "новый",
	"man":     "мужчина",
	"woman":   "женщина",
	"child":   "ребенок",
	"day":     "день",
	"night":   "ночь",
	"time":    "время",
	"year":    "год",
	"week":    "неделя",
	"home":    "дом",
	"school":  "школа",
	"job":     "работа",
	"life":    "жизнь",
	"money":   "деньги",
	"friend":  "друг",
	"people":  "люди",
	"country": "страна",
	"city":    "город",
	"place":   "место",
	"water":   "вода",
	"food":    "еда",
}

// FallbackTranslation returns the built-in Russian translation of word.
// Unknown words get a marker string instead of an error.
func FallbackTranslation(word string) string {
	if t, ok := fallbackTranslations[word]; ok {
		return t
	}
	return fmt.Sprintf("%s (перевод не найден)", word)
}

// HasFallbackTranslation reports whether word is in the built-in dictionary
func HasFallbackTranslation(word string) bool {
	_, ok := fallbackTranslations[word]
	return ok
}
