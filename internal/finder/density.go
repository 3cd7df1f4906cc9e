package finder

import "github.com/Freeeeeet/meeting_bot/internal/model"

// Density количество свободных желательных участников в каждую минуту дня
type Density [model.MinutesPerDay]int

// At возвращает количество свободных участников в минуту m
func (d *Density) At(minute int) int {
	return d[minute]
}

// BuildOptionalDensity считает, сколько желательных участников свободны в каждую минуту.
// Участник, занятый в нескольких пересекающихся событиях, вычитается один раз.
func BuildOptionalDensity(events []model.Event, optional model.AttendeeSet) *Density {
	density := new(Density)
	if optional.Len() == 0 {
		return density
	}

	// события с одинаковым интервалом объединяются
	busyByInterval := make(map[model.Interval]model.AttendeeSet)
	order := make([]model.Interval, 0)
	for _, event := range events {
		busy := event.BusyAmong(optional)
		if busy.Len() == 0 {
			continue
		}

		when := event.When()
		existing, ok := busyByInterval[when]
		if !ok {
			busyByInterval[when] = busy
			order = append(order, when)
			continue
		}
		for id := range busy {
			existing.Add(id)
		}
	}

	var busyAt [model.MinutesPerDay]model.AttendeeSet
	for _, when := range order {
		for m := when.Start(); m < when.End(); m++ {
			if busyAt[m] == nil {
				busyAt[m] = make(model.AttendeeSet)
			}
			for id := range busyByInterval[when] {
				busyAt[m].Add(id)
			}
		}
	}

	total := optional.Len()
	for m := range density {
		density[m] = total - busyAt[m].Len()
	}

	return density
}
