package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

func interval(t *testing.T, start, end int) model.Interval {
	t.Helper()
	i, err := model.FromStartEnd(start, end, false)
	require.NoError(t, err)
	return i
}

func TestRenderDay(t *testing.T) {
	input := DayInput{
		Title: "Встреча на 1 ч",
		Events: []model.Event{
			model.NewEvent("", interval(t, 540, 630), "Анна"),
			model.NewEvent("", interval(t, 720, 780), "Вера"),
			model.NewEvent("", interval(t, 800, 900), "посторонний"),
		},
		Mandatory: model.NewAttendeeSet("Анна"),
		Optional:  model.NewAttendeeSet("Вера"),
		Windows:   []model.Interval{interval(t, 630, 720), interval(t, 780, model.MinutesPerDay)},
	}

	data, err := RenderDay(input)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestRenderDay_Empty(t *testing.T) {
	data, err := RenderDay(DayInput{})
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestSplitEvents(t *testing.T) {
	events := []model.Event{
		model.NewEvent("", interval(t, 0, 60), "Анна", "Вера"),
		model.NewEvent("", interval(t, 60, 120), "Вера"),
		model.NewEvent("", interval(t, 120, 180), "Глеб"),
	}

	mandatory, optional := splitEvents(events, model.NewAttendeeSet("Анна"), model.NewAttendeeSet("Вера"))

	require.Len(t, mandatory, 1)
	assert.Equal(t, "Анна", mandatory[0].label)
	require.Len(t, optional, 1)
	assert.Equal(t, 60, optional[0].when.Start())
}

func TestCalculateHourRange(t *testing.T) {
	assert.Equal(t, hourRange{start: 0, end: 24}, calculateHourRange(nil))

	got := calculateHourRange([]block{
		{when: interval(t, 9*60+30, 10*60)},
		{when: interval(t, 17*60, 18*60+10)},
	})
	assert.Equal(t, hourRange{start: 8, end: 20}, got)

	got = calculateHourRange([]block{{when: interval(t, 30, model.MinutesPerDay)}})
	assert.Equal(t, hourRange{start: 0, end: 24}, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Анна", truncate("Анна", 10))
	assert.Equal(t, "Ана…", truncate("Анастасия", 4))
}
