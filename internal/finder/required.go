package finder

import (
	"slices"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// ResolveRequiredAvailability возвращает свободные для всех обязательных участников
// интервалы длиной не меньше duration, отсортированные по началу
func ResolveRequiredAvailability(events []model.Event, mandatory model.AttendeeSet, duration int) []model.Interval {
	busy := make([]model.Interval, 0, len(events))
	for _, event := range events {
		if event.InvolvesAny(mandatory) {
			busy = append(busy, event.When())
		}
	}

	return freeFromBusy(busy, duration)
}

// freeFromBusy находит промежутки между занятыми интервалами.
// Пересекающиеся и вложенные интервалы склеиваются за счёт того, что курсор не откатывается назад.
func freeFromBusy(busy []model.Interval, duration int) []model.Interval {
	slices.SortFunc(busy, model.CompareByStart)

	free := make([]model.Interval, 0, len(busy)+1)
	freeStart := model.StartOfDay

	for _, interval := range busy {
		// свободно: |--------------|
		// занято:      |------|
		if interval.Start() > freeStart && interval.Start()-freeStart >= duration {
			free = append(free, mustInterval(freeStart, interval.Start()))
		}

		// свободно:    |---------|
		// занято:   |------|
		if interval.End() > freeStart {
			freeStart = interval.End()
		}
	}

	if model.MinutesPerDay-freeStart >= duration {
		free = append(free, mustInterval(freeStart, model.MinutesPerDay))
	}

	return free
}

// mustInterval строит интервал из уже проверенных границ
func mustInterval(start, end int) model.Interval {
	interval, err := model.FromStartEnd(start, end, false)
	if err != nil {
		panic(err)
	}
	return interval
}
