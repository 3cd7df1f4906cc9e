// Package calendar читает события занятости из текстовых форматов:
// строк диалога, JSON и iCalendar.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

var (
	ErrInvalidClock     = errors.New("invalid clock time")
	ErrInvalidEventLine = errors.New("invalid event line")
	ErrNoAttendees      = errors.New("event has no attendees")
)

// ParseClock переводит "ЧЧ:ММ" в минуты от начала дня. "24:00" означает конец дня.
func ParseClock(value string) (int, error) {
	hoursText, minutesText, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(minutesText) != 2 || hoursText == "" || len(hoursText) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hours, err := strconv.Atoi(hoursText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minutes, err := strconv.Atoi(minutesText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	if hours < 0 || minutes < 0 || minutes > 59 || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return model.TimeInMinutes(hours, minutes), nil
}

// ParseRange разбирает "09:00-10:30" в полуоткрытый интервал
func ParseRange(value string) (model.Interval, error) {
	value = strings.ReplaceAll(value, "–", "-")
	startText, endText, ok := strings.Cut(value, "-")
	if !ok {
		return model.Interval{}, fmt.Errorf("%w: expected HH:MM-HH:MM, got %q", ErrInvalidEventLine, value)
	}

	start, err := ParseClock(startText)
	if err != nil {
		return model.Interval{}, err
	}
	end, err := ParseClock(endText)
	if err != nil {
		return model.Interval{}, err
	}

	return model.FromStartEnd(start, end, false)
}

// ParseNames разбирает список имён через запятую
func ParseNames(value string) []string {
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseEventLine разбирает строку "09:00-10:30 Анна, Борис"
func ParseEventLine(line string) (model.Event, error) {
	line = strings.TrimSpace(line)
	rangeText, namesText, ok := strings.Cut(line, " ")
	if !ok {
		return model.Event{}, fmt.Errorf("%w: %q", ErrNoAttendees, line)
	}

	when, err := ParseRange(rangeText)
	if err != nil {
		return model.Event{}, err
	}

	names := ParseNames(namesText)
	if len(names) == 0 {
		return model.Event{}, fmt.Errorf("%w: %q", ErrNoAttendees, line)
	}

	return model.NewEvent(line, when, names...), nil
}

// ParseEventLines разбирает несколько строк, пустые строки пропускаются.
// Ошибка указывает номер строки.
func ParseEventLines(text string) ([]model.Event, error) {
	events := make([]model.Event, 0)
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		event, err := ParseEventLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		events = append(events, event)
	}
	return events, nil
}
