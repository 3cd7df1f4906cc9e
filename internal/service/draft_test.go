package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

var testDay = time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC)

func TestMeetingDraft_Day(t *testing.T) {
	draft := NewMeetingDraft(testDay)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), draft.Day())
}

func TestMeetingDraft_Duration(t *testing.T) {
	draft := NewMeetingDraft(testDay)

	_, ok := draft.Duration()
	assert.False(t, ok)

	assert.ErrorIs(t, draft.SetDuration(0), ErrInvalidDuration)
	assert.ErrorIs(t, draft.SetDuration(model.MinutesPerDay+1), ErrInvalidDuration)

	require.NoError(t, draft.SetDuration(45))
	minutes, ok := draft.Duration()
	assert.True(t, ok)
	assert.Equal(t, 45, minutes)
}

func TestMeetingDraft_Attendees(t *testing.T) {
	draft := NewMeetingDraft(testDay)

	require.NoError(t, draft.AddMandatory(" Анна ", "Борис", "Анна"))
	require.NoError(t, draft.AddOptional("Вера"))
	assert.ErrorIs(t, draft.AddOptional("  "), ErrEmptyName)

	assert.Equal(t, []string{"Анна", "Борис"}, draft.Mandatory())
	assert.Equal(t, []string{"Вера"}, draft.Optional())

	// копия не меняет черновик
	names := draft.Mandatory()
	names[0] = "Глеб"
	assert.Equal(t, "Анна", draft.Mandatory()[0])
}

func TestMeetingDraft_Request(t *testing.T) {
	draft := NewMeetingDraft(testDay)
	_, err := draft.Request()
	require.ErrorIs(t, err, ErrNoDuration)

	require.NoError(t, draft.SetDuration(30))
	require.NoError(t, draft.AddMandatory("Анна"))
	require.NoError(t, draft.AddOptional("Борис"))

	request, err := draft.Request()
	require.NoError(t, err)
	assert.Equal(t, 30, request.Duration())
	assert.True(t, request.Attendees().Has("Анна"))
	assert.True(t, request.OptionalAttendees().Has("Борис"))
}

func TestMeetingDraft_AddEventsLimit(t *testing.T) {
	draft := NewMeetingDraft(testDay)
	busy, err := model.FromStartEnd(540, 600, false)
	require.NoError(t, err)

	total, err := draft.AddEvents(3, model.NewEvent("a", busy, "Анна"), model.NewEvent("b", busy, "Борис"))
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = draft.AddEvents(3, model.NewEvent("c", busy, "Вера"), model.NewEvent("d", busy, "Глеб"))
	assert.ErrorIs(t, err, ErrTooManyEvents)
	assert.Equal(t, 2, total)
	assert.Len(t, draft.Events(), 2)
}

// запускать с -race: обработчики Telegram вызывают методы черновика параллельно
func TestMeetingDraft_ConcurrentHandlers(t *testing.T) {
	draft := NewMeetingDraft(testDay)
	require.NoError(t, draft.SetDuration(30))
	busy, err := model.FromStartEnd(540, 600, false)
	require.NoError(t, err)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				draft.AddEvent(model.NewEvent(fmt.Sprintf("event %d-%d", i, j), busy, "Анна"))
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				assert.NoError(t, draft.AddOptional(fmt.Sprintf("гость %d", i)))
				assert.NoError(t, draft.AddMandatory("Анна"))
				_ = draft.Events()
				_, err := draft.Request()
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, draft.Events(), workers*perWorker)
	assert.Len(t, draft.Optional(), workers)
	assert.Equal(t, []string{"Анна"}, draft.Mandatory())
}
