package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// MeetingDraft собирает параметры встречи во время диалога.
// Живёт только в сессии пользователя и не сохраняется.
// Методы можно вызывать из разных горутин.
type MeetingDraft struct {
	mu          sync.RWMutex
	day         time.Time
	duration    int
	durationSet bool
	mandatory   []string
	optional    []string
	events      []model.Event
}

// NewMeetingDraft создаёт черновик встречи на день day
func NewMeetingDraft(day time.Time) *MeetingDraft {
	return &MeetingDraft{
		day: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
	}
}

// Day возвращает полночь дня встречи
func (d *MeetingDraft) Day() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.day
}

// SetDuration задаёт длительность в минутах, от 1 до суток
func (d *MeetingDraft) SetDuration(minutes int) error {
	if minutes < 1 || minutes > model.MinutesPerDay {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, minutes)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.duration = minutes
	d.durationSet = true
	return nil
}

// Duration возвращает длительность и признак того, что она задана
func (d *MeetingDraft) Duration() (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duration, d.durationSet
}

// AddMandatory добавляет обязательных участников, повторы игнорируются
func (d *MeetingDraft) AddMandatory(names ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return addNames(&d.mandatory, names)
}

// AddOptional добавляет желательных участников, повторы игнорируются
func (d *MeetingDraft) AddOptional(names ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return addNames(&d.optional, names)
}

// AddEvent добавляет событие занятости
func (d *MeetingDraft) AddEvent(event model.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

// AddEvents добавляет события целиком, если их станет не больше limit,
// и возвращает новое число событий
func (d *MeetingDraft) AddEvents(limit int, events ...model.Event) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events)+len(events) > limit {
		return len(d.events), fmt.Errorf("%w: limit %d", ErrTooManyEvents, limit)
	}
	d.events = append(d.events, events...)
	return len(d.events), nil
}

func (d *MeetingDraft) Mandatory() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.mandatory)
}

func (d *MeetingDraft) Optional() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.optional)
}

func (d *MeetingDraft) Events() []model.Event {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.events)
}

// Request строит запрос для поиска
func (d *MeetingDraft) Request() (*model.MeetingRequest, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.durationSet {
		return nil, ErrNoDuration
	}

	request, err := model.NewMeetingRequest(d.mandatory, d.duration)
	if err != nil {
		return nil, fmt.Errorf("build meeting request: %w", err)
	}
	for _, name := range d.optional {
		request.AddOptionalAttendee(name)
	}
	return request, nil
}

func addNames(target *[]string, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyName
		}
		if !slices.Contains(*target, name) {
			*target = append(*target, name)
		}
	}
	return nil
}
