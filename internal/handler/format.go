package handler

import (
	"fmt"
	"strings"
	"time"

	"englex/internal/domain"
	"englex/internal/lookup"

	tele "gopkg.in/telebot.v3"
)

const finishedText = "🎉 Слов этого уровня больше нет!"

// formatWordPrompt renders the question for the session's current word
func formatWordPrompt(session domain.QuizSession) string {
	return fmt.Sprintf("📘 Уровень %s · осталось слов: %d\n\nПереведи на русский:\n\n👉 %s",
		session.Level, len(session.Pool), session.Current.Word)
}

// formatReveal renders the hint shown after a wrong answer
func formatReveal(entry *domain.WordEntry) string {
	var b strings.Builder
	b.WriteString("❌ Попробуй ещё раз!\n\n")
	fmt.Fprintf(&b, "Перевод: %s", entry.Translation)

	synonyms := entry.Synonyms
	if len(synonyms) > lookup.MaxSynonyms {
		synonyms = synonyms[:lookup.MaxSynonyms]
	}
	if len(synonyms) > 0 {
		fmt.Fprintf(&b, "\nСинонимы: %s", strings.Join(synonyms, ", "))
	}
	return b.String()
}

// formatFacts renders a list of facts, one block per fact
func formatFacts(facts []domain.Fact) string {
	var b strings.Builder
	b.WriteString("🧠 Интересные факты:")
	for _, f := range facts {
		fmt.Fprintf(&b, "\n\n%s %s\n%s", f.Emoji, f.Title, f.Text)
	}
	return b.String()
}

// formatDayWords renders the words studied on one day
func formatDayWords(words []domain.StudiedWord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Слова за выбранный день (%d):\n", len(words))
	for i, w := range words {
		fmt.Fprintf(&b, "\n%d. %s (%s)", i+1, w.Word, w.Level)
	}
	return b.String()
}

// levelMarkup lists the levels, two per row
func levelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	row := tele.Row{}
	for _, level := range domain.Levels {
		row = append(row, markup.Data(string(level), levelPrefix+string(level)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// quizMarkup is shown under every quiz word
func quizMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnSkip, btnMainMenu))
	return markup
}

// finishedMarkup offers to start the level over
func finishedMarkup(level domain.Level) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🔁 Начать уровень заново", resetPrefix+string(level))),
		markup.Row(btnChooseLevel),
		markup.Row(btnMainMenu),
	)
	return markup
}

// daysMarkup builds the history page keyboard
func daysMarkup(days []domain.StudyDay, page, totalPages int, now time.Time) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(now), day.Studied)
		rows = append(rows, markup.Row(markup.Data(btnText, "day_"+day.DateString())))
	}

	// Add pagination buttons if needed
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}
