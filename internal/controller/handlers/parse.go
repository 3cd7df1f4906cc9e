package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/calendar"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// parseDuration понимает "45", "45 мин", "1:30", "2ч", "1ч 30м".
// Больше суток не принимается.
func parseDuration(text string) (int, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, errBadDuration
	}

	if strings.Contains(text, ":") {
		minutes, err := calendar.ParseClock(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errBadDuration, text)
		}
		return minutes, nil
	}

	total := 0
	rest := strings.ReplaceAll(text, " ", "")
	for rest != "" {
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end == 0 {
			return 0, fmt.Errorf("%w: %q", errBadDuration, text)
		}
		value, err := strconv.Atoi(rest[:end])
		if err != nil || value > model.MinutesPerDay {
			return 0, fmt.Errorf("%w: %q", errBadDuration, text)
		}
		rest = rest[end:]

		unit := rest
		if i := strings.IndexAny(rest, "0123456789"); i >= 0 {
			unit = rest[:i]
		}
		rest = rest[len(unit):]

		switch unit {
		case "", "м", "мин", "m", "min":
			total += value
		case "ч", "час", "часа", "часов", "h":
			total += value * 60
		default:
			return 0, fmt.Errorf("%w: %q", errBadDuration, text)
		}
		if total > model.MinutesPerDay {
			return 0, fmt.Errorf("%w: %q", errBadDuration, text)
		}
	}

	return total, nil
}

// parseDate понимает "02.03.2026" и "2026-03-02"
func parseDate(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{"02.01.2006", "2006-01-02"} {
		if day, err := time.ParseInLocation(layout, text, loc); err == nil {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errBadDate, text)
}

// commandArgs возвращает текст после команды: "/addoptional Анна" -> "Анна"
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

// isSkip проверяет ответ "пропустить" в диалоге
func isSkip(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "-", "нет", "никого", "пропустить":
		return true
	}
	return false
}

// isCalendarFile проверяет имя и тип присланного файла
func isCalendarFile(fileName, mimeType string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".ics") || mimeType == "text/calendar"
}
