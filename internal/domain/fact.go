package domain

// Fact is a short piece of trivia shown next to the quiz
type Fact struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
}
