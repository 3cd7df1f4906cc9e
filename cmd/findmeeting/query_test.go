package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEvents = `[
	{"label": "standup", "start": "09:00", "end": "09:30", "attendees": ["ann", "bob"]},
	{"label": "lunch", "start": "12:00", "end": "13:00", "attendees": ["cid"]},
	{"label": "review", "start": "15:00", "end": "24:00", "attendees": ["bob"]}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunQuery_Text(t *testing.T) {
	var out bytes.Buffer

	err := runQuery(queryOptions{
		EventsFile: writeFile(t, "events.json", sampleEvents),
		Day:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Duration:   60,
		Required:   []string{"ann", "bob"},
		Optional:   []string{"cid"},
		Format:     formatText,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "00:00-09:00\t540 min\n"+
		"09:30-12:00\t150 min\n"+
		"13:00-15:00\t120 min\n"+
		"optional attendees free: 1 of 1\n", out.String())
}

func TestRunQuery_JSONAndImage(t *testing.T) {
	var out bytes.Buffer
	imagePath := filepath.Join(t.TempDir(), "day.png")

	err := runQuery(queryOptions{
		EventsFile: writeFile(t, "events.json", sampleEvents),
		Day:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Duration:   600,
		Required:   []string{"ann"},
		Format:     formatJSON,
		PNGFile:    imagePath,
	}, &out)
	require.NoError(t, err)

	var result queryResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 3, result.EventCount)
	require.Len(t, result.Windows, 1)
	assert.Equal(t, 570, result.Windows[0].Start())
	assert.Equal(t, 1440, result.Windows[0].End())

	data, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestRunQuery_ICS(t *testing.T) {
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:1",
		"DTSTAMP:20260301T080000Z",
		"DTSTART:20260302T080000Z",
		"DTEND:20260302T230000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	var out bytes.Buffer
	err := runQuery(queryOptions{
		ICSFiles: []string{writeFile(t, "me.ics", ics)},
		Day:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Owner:    "me",
		Duration: 120,
		Required: []string{"me"},
		Format:   formatText,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "00:00-08:00\t480 min\n", out.String())
}

func TestRunQuery_NoWindows(t *testing.T) {
	var out bytes.Buffer

	err := runQuery(queryOptions{Duration: 2000, Format: formatText}, &out)
	require.NoError(t, err)
	assert.Equal(t, "no suitable time\n", out.String())
}

func TestRunQuery_Errors(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, runQuery(queryOptions{Duration: 30, Format: "yaml"}, &out))
	assert.Error(t, runQuery(queryOptions{Duration: -1, Format: formatText}, &out))
	assert.Error(t, runQuery(queryOptions{EventsFile: "missing.json", Duration: 30, Format: formatText}, &out))
	assert.Error(t, runQuery(queryOptions{
		EventsFile: writeFile(t, "bad.json", `[{"start": "x"}]`),
		Duration:   30,
		Format:     formatText,
	}, &out))
}
