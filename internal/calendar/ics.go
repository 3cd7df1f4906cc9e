package calendar

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// ParseICS читает VEVENT из iCalendar и возвращает события, пересекающие день day
// (в часовом поясе day). События обрезаются по границам дня.
// Прозрачные и отменённые события пропускаются, повторения (RRULE) не разворачиваются.
// Участники берутся из ATTENDEE без "mailto:", кроме отказавшихся; owner добавляется ко всем событиям.
func ParseICS(r io.Reader, day time.Time, owner string) ([]model.Event, error) {
	loc := day.Location()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	decoder := ical.NewDecoder(r)
	events := make([]model.Event, 0)

	for {
		cal, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, vevent := range cal.Events() {
			if skipEvent(&vevent) {
				continue
			}

			start, end, err := eventBounds(&vevent, loc)
			if err != nil {
				return nil, err
			}
			if !end.After(dayStart) || !start.Before(dayEnd) {
				continue
			}

			when, err := clipToDay(start, end, dayStart, dayEnd)
			if err != nil {
				return nil, err
			}
			if when.Duration() == 0 {
				continue
			}

			attendees := eventAttendees(&vevent)
			if owner != "" {
				attendees = append(attendees, owner)
			}
			if len(attendees) == 0 {
				continue
			}

			events = append(events, model.NewEvent(eventLabel(&vevent), when, attendees...))
		}
	}

	return events, nil
}

func skipEvent(vevent *ical.Event) bool {
	if prop := vevent.Props.Get(ical.PropTransparency); prop != nil && strings.EqualFold(prop.Value, "TRANSPARENT") {
		return true
	}
	if prop := vevent.Props.Get(ical.PropStatus); prop != nil && strings.EqualFold(prop.Value, "CANCELLED") {
		return true
	}
	return false
}

// eventBounds возвращает начало и конец события. Без DTEND конец берётся из DURATION,
// для событий на целый день - следующая полночь.
func eventBounds(vevent *ical.Event, loc *time.Location) (time.Time, time.Time, error) {
	start, err := vevent.DateTimeStart(loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("event %s start: %w", eventLabel(vevent), err)
	}

	if vevent.Props.Get(ical.PropDateTimeEnd) != nil {
		end, err := vevent.DateTimeEnd(loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("event %s end: %w", eventLabel(vevent), err)
		}
		return start, end, nil
	}

	if prop := vevent.Props.Get(ical.PropDuration); prop != nil {
		duration, err := prop.Duration()
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("event %s duration: %w", eventLabel(vevent), err)
		}
		return start, start.Add(duration), nil
	}

	if prop := vevent.Props.Get(ical.PropDateTimeStart); prop != nil && prop.ValueType() == ical.ValueDate {
		return start, start.AddDate(0, 0, 1), nil
	}

	return start, start, nil
}

func clipToDay(start, end, dayStart, dayEnd time.Time) (model.Interval, error) {
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	startMinute := int(math.Floor(start.Sub(dayStart).Minutes()))
	endMinute := int(math.Ceil(end.Sub(dayStart).Minutes()))
	// дни перехода на летнее время длиннее или короче суток
	if endMinute > model.MinutesPerDay {
		endMinute = model.MinutesPerDay
	}
	if startMinute > endMinute {
		startMinute = endMinute
	}

	return model.FromStartEnd(startMinute, endMinute, false)
}

func eventAttendees(vevent *ical.Event) []string {
	props := vevent.Props.Values(ical.PropAttendee)
	attendees := make([]string, 0, len(props))
	for _, prop := range props {
		if strings.EqualFold(prop.Params.Get("PARTSTAT"), "DECLINED") {
			continue
		}
		address := strings.TrimSpace(prop.Value)
		if len(address) >= len("mailto:") && strings.EqualFold(address[:len("mailto:")], "mailto:") {
			address = address[len("mailto:"):]
		}
		if address != "" {
			attendees = append(attendees, address)
		}
	}
	return attendees
}

func eventLabel(vevent *ical.Event) string {
	if prop := vevent.Props.Get(ical.PropSummary); prop != nil && prop.Value != "" {
		return prop.Value
	}
	if prop := vevent.Props.Get(ical.PropUID); prop != nil && prop.Value != "" {
		return prop.Value
	}
	return uuid.NewString()
}
