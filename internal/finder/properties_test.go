package finder

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

var people = []string{"ann", "bob", "cid", "dan", "eve", "fay"}

// randomCase генерирует воспроизводимый набор событий и запрос
func randomCase(t *testing.T, rng *rand.Rand) ([]model.Event, *model.MeetingRequest) {
	t.Helper()

	count := rng.Intn(12)
	events := make([]model.Event, 0, count)
	for i := 0; i < count; i++ {
		start := rng.Intn(model.MinutesPerDay)
		end := start + rng.Intn(model.MinutesPerDay-start+1)
		when := fromStartEnd(t, start, end, false)

		attendees := make([]string, 0)
		for _, person := range people {
			if rng.Intn(3) == 0 {
				attendees = append(attendees, person)
			}
		}
		events = append(events, model.NewEvent(fmt.Sprintf("event %d", i), when, attendees...))
	}

	var mandatory, optional []string
	for _, person := range people {
		switch rng.Intn(3) {
		case 0:
			mandatory = append(mandatory, person)
		case 1:
			optional = append(optional, person)
		}
	}

	durations := []int{0, 1, 15, 30, 60, 90, 240}
	return events, newRequest(t, durations[rng.Intn(len(durations))], mandatory, optional...)
}

func TestFindMeetingTimes_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		events, request := randomCase(t, rng)

		actual := FindMeetingTimes(events, request)

		for j, window := range actual {
			assert.GreaterOrEqual(t, window.Duration(), request.Duration(), "case %d window %s", i, window)
			if j > 0 {
				prev := actual[j-1]
				assert.Less(t, prev.Start(), window.Start(), "case %d not sorted", i)
				assert.False(t, prev.Overlaps(window), "case %d overlap %s %s", i, prev, window)
			}
		}

		// повторный вызов даёт тот же результат в том же порядке
		require.Equal(t, actual, FindMeetingTimes(events, request), "case %d", i)
	}
}

func TestFindMeetingTimes_MandatoryAlwaysFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		events, request := randomCase(t, rng)

		for _, window := range FindMeetingTimes(events, request) {
			for _, event := range events {
				if event.InvolvesAny(request.Attendees()) {
					assert.False(t, event.When().Overlaps(window),
						"case %d: window %s overlaps mandatory event %s", i, window, event.When())
				}
			}
		}
	}
}

func TestFindMeetingTimes_UnrelatedEventsDoNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		events, request := randomCase(t, rng)
		before := FindMeetingTimes(events, request)

		start := rng.Intn(model.MinutesPerDay)
		noise := model.NewEvent("noise", fromStartEnd(t, start, model.MinutesPerDay, false), "stranger", "outsider")
		after := FindMeetingTimes(append(events, noise), request)

		require.Equal(t, before, after, "case %d", i)
	}
}

func TestFindMeetingTimes_DurationLongerThanDay(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		events, request := randomCase(t, rng)
		tooLong := newRequest(t, model.MinutesPerDay+1+rng.Intn(100), request.Attendees().Sorted(), request.OptionalAttendees().Sorted()...)

		require.Empty(t, FindMeetingTimes(events, tooLong), "case %d", i)
	}
}

func TestFindMeetingTimes_EmptyInputsGiveWholeDay(t *testing.T) {
	for _, duration := range []int{0, 30, model.MinutesPerDay} {
		request := newRequest(t, duration, nil)
		require.Equal(t, []model.Interval{model.WholeDay}, FindMeetingTimes(nil, request), "duration %d", duration)
	}
}
