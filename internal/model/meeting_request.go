package model

import "fmt"

// MeetingRequest параметры поиска времени встречи.
// Желательных участников можно добавлять после создания, удалить их нельзя.
type MeetingRequest struct {
	duration  int
	mandatory AttendeeSet
	optional  AttendeeSet
}

// NewMeetingRequest создаёт запрос с обязательными участниками и длительностью в минутах
func NewMeetingRequest(mandatory []string, duration int) (*MeetingRequest, error) {
	if duration < 0 {
		return nil, fmt.Errorf("negative meeting duration: %d", duration)
	}
	return &MeetingRequest{
		duration:  duration,
		mandatory: NewAttendeeSet(mandatory...),
		optional:  make(AttendeeSet),
	}, nil
}

// AddOptionalAttendee добавляет желательного участника
func (r *MeetingRequest) AddOptionalAttendee(id string) {
	r.optional.Add(id)
}

// Duration возвращает длительность встречи в минутах
func (r *MeetingRequest) Duration() int {
	return r.duration
}

// Attendees возвращает обязательных участников
func (r *MeetingRequest) Attendees() AttendeeSet {
	return r.mandatory
}

// OptionalAttendees возвращает желательных участников
func (r *MeetingRequest) OptionalAttendees() AttendeeSet {
	return r.optional
}
