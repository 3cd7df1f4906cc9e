package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Attendees(t *testing.T) {
	event := NewEvent("standup", Interval{start: 600, end: 615}, "cid", "ann", "bob", "ann")

	assert.Equal(t, "standup", event.Label())
	assert.Equal(t, Interval{start: 600, end: 615}, event.When())
	assert.Equal(t, []string{"ann", "bob", "cid"}, event.Attendees())
}

func TestEvent_InvolvesAny(t *testing.T) {
	event := NewEvent("review", Interval{start: 0, end: 30}, "ann", "bob")

	assert.True(t, event.InvolvesAny(NewAttendeeSet("bob", "zed")))
	assert.False(t, event.InvolvesAny(NewAttendeeSet("zed")))
	assert.False(t, event.InvolvesAny(NewAttendeeSet()))
}

func TestEvent_BusyAmong(t *testing.T) {
	event := NewEvent("review", Interval{start: 0, end: 30}, "ann", "bob", "cid")

	busy := event.BusyAmong(NewAttendeeSet("bob", "cid", "dan"))

	assert.Equal(t, []string{"bob", "cid"}, busy.Sorted())
	assert.Zero(t, event.BusyAmong(NewAttendeeSet()).Len())
}

func TestMeetingRequest(t *testing.T) {
	request, err := NewMeetingRequest([]string{"ann", "bob"}, 30)
	require.NoError(t, err)

	request.AddOptionalAttendee("cid")
	request.AddOptionalAttendee("cid")

	assert.Equal(t, 30, request.Duration())
	assert.Equal(t, []string{"ann", "bob"}, request.Attendees().Sorted())
	assert.Equal(t, []string{"cid"}, request.OptionalAttendees().Sorted())
}

func TestMeetingRequest_NegativeDuration(t *testing.T) {
	request, err := NewMeetingRequest(nil, -1)

	require.Error(t, err)
	assert.Nil(t, request)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Анна", (&User{FirstName: "Анна"}).DisplayName())
	assert.Equal(t, "участник", (&User{}).DisplayName())
}
