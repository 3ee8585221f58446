package domain

import "time"

var monthsRu = []string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// StudyDay is a calendar day with the number of words learned on it
type StudyDay struct {
	Date    time.Time
	Studied int
}

// DateString returns date in YYYYMMDD format
func (d StudyDay) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns a short Russian label relative to now
func (d StudyDay) DisplayString(now time.Time) string {
	date := d.Date

	if sameDay(date, now) {
		return "Сегодня"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Вчера"
	}

	return date.Format("2 ") + monthsRu[date.Month()] + date.Format(" 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
