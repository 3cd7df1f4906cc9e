package calendar

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

type eventJSON struct {
	Label     string   `json:"label"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Attendees []string `json:"attendees"`
}

// DecodeEvents читает JSON-массив событий вида
// {"label": "...", "start": "09:00", "end": "10:30", "attendees": ["Анна"]}
func DecodeEvents(r io.Reader) ([]model.Event, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var raw []eventJSON
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]model.Event, 0, len(raw))
	for i, item := range raw {
		start, err := ParseClock(item.Start)
		if err != nil {
			return nil, fmt.Errorf("event %d start: %w", i, err)
		}
		end, err := ParseClock(item.End)
		if err != nil {
			return nil, fmt.Errorf("event %d end: %w", i, err)
		}
		when, err := model.FromStartEnd(start, end, false)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, model.NewEvent(item.Label, when, item.Attendees...))
	}

	return events, nil
}
