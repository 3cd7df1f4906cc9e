package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStartEnd(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		inclusive bool
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "exclusive", start: 60, end: 120, wantStart: 60, wantEnd: 120},
		{name: "inclusive adds a minute", start: 60, end: 120, inclusive: true, wantStart: 60, wantEnd: 121},
		{name: "inclusive end of day", start: 600, end: EndOfDay, inclusive: true, wantStart: 600, wantEnd: MinutesPerDay},
		{name: "inclusive past end of day is capped", start: 600, end: MinutesPerDay, inclusive: true, wantStart: 600, wantEnd: MinutesPerDay},
		{name: "empty", start: 30, end: 30, wantStart: 30, wantEnd: 30},
		{name: "end before start", start: 120, end: 60, wantErr: true},
		{name: "negative start", start: -1, end: 60, wantErr: true},
		{name: "end past day", start: 0, end: MinutesPerDay + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromStartEnd(tt.start, tt.end, tt.inclusive)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInterval)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start())
			assert.Equal(t, tt.wantEnd, got.End())
		})
	}
}

func TestFromStartEnd_InclusiveEndOfDayIsEqual(t *testing.T) {
	a, err := FromStartEnd(600, EndOfDay, true)
	require.NoError(t, err)
	b, err := FromStartEnd(600, MinutesPerDay, false)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a.TouchesEndOfDay())
}

func TestFromStartDuration(t *testing.T) {
	got, err := FromStartDuration(TimeInMinutes(9, 30), 45)
	require.NoError(t, err)
	assert.Equal(t, 570, got.Start())
	assert.Equal(t, 615, got.End())
	assert.Equal(t, 45, got.Duration())

	_, err = FromStartDuration(10, -5)
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = FromStartDuration(EndOfDay, 2)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInterval_Relations(t *testing.T) {
	morning := Interval{start: 540, end: 600}
	late := Interval{start: 600, end: 660}
	inner := Interval{start: 550, end: 560}

	assert.False(t, morning.Overlaps(late))
	assert.True(t, morning.Overlaps(inner))
	assert.True(t, morning.Contains(inner))
	assert.False(t, inner.Contains(morning))
	assert.True(t, morning.ContainsMinute(540))
	assert.False(t, morning.ContainsMinute(600))

	// пустой интервал внутри другого считается пересекающимся: 540 < 550 && 550 < 600
	empty := Interval{start: 550, end: 550}
	assert.True(t, morning.Overlaps(empty))
	assert.False(t, morning.Overlaps(Interval{start: 600, end: 600}))
}

func TestInterval_Compare(t *testing.T) {
	a := Interval{start: 10, end: 50}
	b := Interval{start: 10, end: 20}
	c := Interval{start: 30, end: 40}

	assert.Positive(t, CompareByStart(a, b))
	assert.Negative(t, CompareByStart(b, c))
	assert.Negative(t, CompareByEnd(b, c))
	assert.Positive(t, CompareByEnd(a, c))
	assert.Zero(t, CompareByStart(a, a))
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "09:05-10:30", Interval{start: 545, end: 630}.String())
	assert.Equal(t, "00:00-24:00", WholeDay.String())
}

func TestInterval_JSON(t *testing.T) {
	data, err := json.Marshal(Interval{start: 60, end: 90})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":60,"end":90}`, string(data))

	var decoded Interval
	require.NoError(t, json.Unmarshal([]byte(`{"start":0,"end":1440}`), &decoded))
	assert.Equal(t, WholeDay, decoded)

	err = json.Unmarshal([]byte(`{"start":100,"end":50}`), &decoded)
	require.ErrorIs(t, err, ErrInvalidInterval)
}
