package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

func newTestHandlers() *Handlers {
	return NewHandlers(nil, nil, state.NewManager(), 5, zap.NewNop())
}

func TestHandlers_DraftSession(t *testing.T) {
	h := newTestHandlers()

	_, err := h.draft(1)
	require.ErrorIs(t, err, service.ErrNoDraft)

	draft := service.NewMeetingDraft(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	h.startDraft(1, draft)

	got, err := h.draft(1)
	require.NoError(t, err)
	assert.Same(t, draft, got)
	assert.Equal(t, state.StateMeetingDuration, h.stateManager.GetState(1))
}

func TestHandlers_StartDraftReplacesOld(t *testing.T) {
	h := newTestHandlers()
	old := service.NewMeetingDraft(time.Now())
	h.startDraft(1, old)
	h.stateManager.SetState(1, state.StateMeetingEvents)

	fresh := service.NewMeetingDraft(time.Now())
	h.startDraft(1, fresh)

	got, err := h.draft(1)
	require.NoError(t, err)
	assert.Same(t, fresh, got)
	assert.Equal(t, state.StateMeetingDuration, h.stateManager.GetState(1))
}

func TestHandlers_ApplyDuration(t *testing.T) {
	h := newTestHandlers()

	require.ErrorIs(t, h.applyDuration(1, 30), service.ErrNoDraft)

	draft := service.NewMeetingDraft(time.Now())
	h.startDraft(1, draft)

	require.ErrorIs(t, h.applyDuration(1, 0), service.ErrInvalidDuration)
	assert.Equal(t, state.StateMeetingDuration, h.stateManager.GetState(1))

	require.NoError(t, h.applyDuration(1, 30))
	minutes, ok := draft.Duration()
	assert.True(t, ok)
	assert.Equal(t, 30, minutes)
	assert.Equal(t, state.StateMeetingMandatory, h.stateManager.GetState(1))
}

func TestHandlers_WrongDataTypeIsNoDraft(t *testing.T) {
	h := newTestHandlers()
	h.stateManager.SetData(1, state.KeyDraft, "not a draft")

	_, err := h.draft(1)
	assert.ErrorIs(t, err, service.ErrNoDraft)
}

func TestDurationKeyboard(t *testing.T) {
	markup := durationKeyboard()

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "15 мин", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, CallbackDuration+"15", markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "2 ч", markup.InlineKeyboard[1][2].Text)
}
