package quiz

// Overrides maps a Russian infinitive to irregular forms that the suffix rules
// cannot produce, such as the paired aspect and the past tense.
var Overrides = map[string][]string{
	"находить":  {"найти", "нашел", "нашла", "нашли", "найди", "ищу", "ищешь", "ищет", "искать"},
	"искать":    {"ищу", "ищешь", "ищет"},
	"давать":    {"дать", "дал", "дала", "дали", "дай"},
	"брать":     {"взять", "взял", "взяла", "взяли", "возьми"},
	"делать":    {"сделать", "сделал", "сделала", "сделали"},
	"говорить":  {"сказать", "сказал", "сказала", "сказали", "скажи"},
	"идти":      {"пойти", "шел", "шла", "шли", "иди"},
	"приходить": {"прийти", "пришел", "пришла", "пришли", "приди"},
	"бегать":    {"бежать", "бежал", "бежала", "бежали", "беги"},
	"работать":  {"поработать"},
	"звонить":   {"позвонить", "позвони"},
	"пытаться":  {"попробовать", "попробуй"},
	"нуждаться": {"нужен", "нужна", "нужно", "нужны"},
}

// SourceAliases points an English source word at its Overrides key, so a remote
// translation that picked another form still accepts the whole family.
var SourceAliases = map[string]string{
	"find": "находить",
	"give": "давать",
	"take": "брать",
	"make": "делать",
	"say":  "говорить",
	"go":   "идти",
	"come": "приходить",
	"run":  "бегать",
	"work": "работать",
	"call": "звонить",
	"try":  "пытаться",
	"need": "нуждаться",
}

// OverrideForms returns the override forms for a translation, falling back to
// the alias of the source word. The alias key itself is included in that case.
func OverrideForms(translation, sourceWord string) []string {
	if forms, ok := Overrides[translation]; ok {
		return forms
	}
	key, ok := SourceAliases[sourceWord]
	if !ok {
		return nil
	}
	forms := Overrides[key]
	out := make([]string, 0, len(forms)+1)
	out = append(out, key)
	return append(out, forms...)
}
