package model

import (
	"time"

	"github.com/google/uuid"
)

// Proposal сохранённый результат поиска времени встречи.
// Сами события занятости не сохраняются, только параметры запроса и ответ.
type Proposal struct {
	ID              uuid.UUID  `json:"id"`
	UserID          int64      `json:"user_id"`
	DurationMinutes int        `json:"duration_minutes"`
	Mandatory       []string   `json:"mandatory"`
	Optional        []string   `json:"optional"`
	EventCount      int        `json:"event_count"`
	OptionalFree    int        `json:"optional_free"` // сколько желательных участников свободны в выбранных окнах
	Windows         []Interval `json:"windows"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HasWindows проверяет, найдено ли хотя бы одно окно
func (p *Proposal) HasWindows() bool {
	return len(p.Windows) > 0
}
