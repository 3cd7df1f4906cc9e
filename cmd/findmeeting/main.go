package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/app"
)

func main() {
	_ = godotenv.Load()

	application := &cli.App{
		Name:  "findmeeting",
		Usage: "Find meeting times for one day from busy events.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}, Usage: "debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			queryCommand(),
		},
	}

	if err := application.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "findmeeting:", err)
		os.Exit(1)
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Print windows where all required attendees are free and most optional ones are.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "events", Usage: "JSON file with events: [{label, start, end, attendees}]"},
			&cli.StringSliceFlag{Name: "ics", Usage: "iCalendar file, repeatable"},
			&cli.StringFlag{Name: "date", Usage: "day for iCalendar files, YYYY-MM-DD (default today)"},
			&cli.StringFlag{Name: "owner", Usage: "attendee added to every iCalendar event"},
			&cli.IntFlag{Name: "duration", Required: true, Usage: "meeting length in minutes"},
			&cli.StringSliceFlag{Name: "required", Usage: "required attendees"},
			&cli.StringSliceFlag{Name: "optional", Usage: "optional attendees"},
			&cli.StringFlag{Name: "format", Value: formatText, Usage: "text or json"},
			&cli.StringFlag{Name: "png", Usage: "write a timeline image to this file"},
		},
		Action: func(c *cli.Context) error {
			logger := app.NewLogger("development", c.String("log-level"))
			defer logger.Sync()

			day := time.Now()
			if value := c.String("date"); value != "" {
				parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
				if err != nil {
					return fmt.Errorf("parse date: %w", err)
				}
				day = parsed
			}

			opts := queryOptions{
				EventsFile: c.String("events"),
				ICSFiles:   c.StringSlice("ics"),
				Day:        day,
				Owner:      c.String("owner"),
				Duration:   c.Int("duration"),
				Required:   c.StringSlice("required"),
				Optional:   c.StringSlice("optional"),
				Format:     c.String("format"),
				PNGFile:    c.String("png"),
			}

			logger.Debug("Running query",
				zap.String("events", opts.EventsFile),
				zap.Strings("ics", opts.ICSFiles),
				zap.Int("duration", opts.Duration))

			return runQuery(opts, c.App.Writer)
		},
	}
}
