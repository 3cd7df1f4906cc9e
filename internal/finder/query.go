// Package finder подбирает время встречи внутри одного дня: все обязательные участники
// свободны, а желательных участников свободно как можно больше.
//
// Все функции пакета чистые: состояние создаётся заново на каждый вызов,
// поэтому их можно вызывать конкурентно.
package finder

import "github.com/Freeeeeet/meeting_bot/internal/model"

// Explanation промежуточные результаты поиска
type Explanation struct {
	Required     []model.Interval // свободное время обязательных участников
	Density      *Density         // свободные желательные участники по минутам
	OptionalFree int              // сколько желательных участников свободны в выбранных окнах
	Windows      []model.Interval // итоговые окна
}

// FindMeetingTimes возвращает окна для встречи в порядке возрастания начала.
// Невыполнимый запрос даёт пустой список, а не ошибку.
func FindMeetingTimes(events []model.Event, request *model.MeetingRequest) []model.Interval {
	return Explain(events, request).Windows
}

// Explain выполняет поиск и возвращает вместе с окнами промежуточные данные
func Explain(events []model.Event, request *model.MeetingRequest) Explanation {
	if request == nil {
		return Explanation{
			Required: []model.Interval{},
			Density:  new(Density),
			Windows:  []model.Interval{},
		}
	}

	duration := request.Duration()
	optional := request.OptionalAttendees()

	required := ResolveRequiredAvailability(events, request.Attendees(), duration)
	density := BuildOptionalDensity(events, optional)
	windows, optionalFree := SelectWindows(required, density, duration, optional.Len())

	return Explanation{
		Required:     required,
		Density:      density,
		OptionalFree: optionalFree,
		Windows:      windows,
	}
}
