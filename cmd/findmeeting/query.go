package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/calendar"
	"github.com/Freeeeeet/meeting_bot/internal/finder"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/render"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type queryOptions struct {
	EventsFile string
	ICSFiles   []string
	Day        time.Time
	Owner      string
	Duration   int
	Required   []string
	Optional   []string
	Format     string
	PNGFile    string
}

type queryResult struct {
	Windows      []model.Interval `json:"windows"`
	Required     []model.Interval `json:"required"`
	OptionalFree int              `json:"optional_free"`
	EventCount   int              `json:"event_count"`
}

func runQuery(opts queryOptions, out io.Writer) error {
	if opts.Format != formatText && opts.Format != formatJSON {
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	events, err := loadEvents(opts)
	if err != nil {
		return err
	}

	request, err := model.NewMeetingRequest(opts.Required, opts.Duration)
	if err != nil {
		return err
	}
	for _, name := range opts.Optional {
		request.AddOptionalAttendee(name)
	}

	explanation := finder.Explain(events, request)

	if opts.PNGFile != "" {
		image, err := render.RenderDay(render.DayInput{
			Title:     fmt.Sprintf("%s, %d min", opts.Day.Format("2006-01-02"), opts.Duration),
			Events:    events,
			Mandatory: request.Attendees(),
			Optional:  request.OptionalAttendees(),
			Windows:   explanation.Windows,
		})
		if err != nil {
			return fmt.Errorf("render image: %w", err)
		}
		if err := os.WriteFile(opts.PNGFile, image, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
	}

	if opts.Format == formatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(queryResult{
			Windows:      explanation.Windows,
			Required:     explanation.Required,
			OptionalFree: explanation.OptionalFree,
			EventCount:   len(events),
		})
	}

	if len(explanation.Windows) == 0 {
		_, err := fmt.Fprintln(out, "no suitable time")
		return err
	}
	for _, window := range explanation.Windows {
		if _, err := fmt.Fprintf(out, "%s\t%d min\n", window, window.Duration()); err != nil {
			return err
		}
	}
	if request.OptionalAttendees().Len() > 0 {
		_, err := fmt.Fprintf(out, "optional attendees free: %d of %d\n",
			explanation.OptionalFree, request.OptionalAttendees().Len())
		return err
	}
	return nil
}

func loadEvents(opts queryOptions) ([]model.Event, error) {
	events := make([]model.Event, 0)

	if opts.EventsFile != "" {
		file, err := os.Open(opts.EventsFile)
		if err != nil {
			return nil, fmt.Errorf("open events: %w", err)
		}
		defer file.Close()

		decoded, err := calendar.DecodeEvents(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.EventsFile, err)
		}
		events = append(events, decoded...)
	}

	for _, path := range opts.ICSFiles {
		parsed, err := parseICSFile(path, opts.Day, opts.Owner)
		if err != nil {
			return nil, err
		}
		events = append(events, parsed...)
	}

	return events, nil
}

func parseICSFile(path string, day time.Time, owner string) ([]model.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calendar: %w", err)
	}
	defer file.Close()

	events, err := calendar.ParseICS(file, day, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}
