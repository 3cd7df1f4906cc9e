package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// FormatInterval форматирует окно с длительностью: "09:00-10:30 (1 ч 30 мин)"
func FormatInterval(interval model.Interval) string {
	return fmt.Sprintf("%s (%s)", interval.String(), FormatDuration(interval.Duration()))
}
