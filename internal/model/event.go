package model

import "sort"

// AttendeeSet множество идентификаторов участников
type AttendeeSet map[string]struct{}

// NewAttendeeSet создаёт множество из списка идентификаторов
func NewAttendeeSet(ids ...string) AttendeeSet {
	set := make(AttendeeSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add добавляет участника
func (s AttendeeSet) Add(id string) {
	s[id] = struct{}{}
}

// Has проверяет наличие участника
func (s AttendeeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len возвращает размер множества
func (s AttendeeSet) Len() int {
	return len(s)
}

// Sorted возвращает участников в алфавитном порядке
func (s AttendeeSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Event занятость: интервал и участники, которые в это время заняты
type Event struct {
	label     string
	when      Interval
	attendees AttendeeSet
}

// NewEvent создаёт событие. Label используется только для диагностики.
func NewEvent(label string, when Interval, attendees ...string) Event {
	return Event{
		label:     label,
		when:      when,
		attendees: NewAttendeeSet(attendees...),
	}
}

// Label возвращает название события
func (e Event) Label() string {
	return e.label
}

// When возвращает интервал события
func (e Event) When() Interval {
	return e.when
}

// Attendees возвращает участников события в алфавитном порядке
func (e Event) Attendees() []string {
	return e.attendees.Sorted()
}

// InvolvesAny проверяет, занят ли в событии хотя бы один участник из set
func (e Event) InvolvesAny(set AttendeeSet) bool {
	small, large := e.attendees, set
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if large.Has(id) {
			return true
		}
	}
	return false
}

// BusyAmong возвращает участников из set, занятых в этом событии
func (e Event) BusyAmong(set AttendeeSet) AttendeeSet {
	busy := make(AttendeeSet)
	for id := range e.attendees {
		if set.Has(id) {
			busy.Add(id)
		}
	}
	return busy
}
