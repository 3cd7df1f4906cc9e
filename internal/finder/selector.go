package finder

import (
	"slices"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// SelectWindows делит свободные интервалы обязательных участников на участки с одинаковым
// числом свободных желательных участников и возвращает участки с максимальным числом.
// Второй результат - сколько желательных участников свободны в выбранных окнах.
// Если ни один участок не вмещает встречу, возвращается копия исходных интервалов.
func SelectWindows(required []model.Interval, density *Density, duration, maxOptionals int) ([]model.Interval, int) {
	if maxOptionals == 0 {
		return slices.Clone(required), 0
	}

	buckets := make([][]model.Interval, maxOptionals+1)

	for _, interval := range required {
		start, end := interval.Start(), interval.End()
		if end > model.MinutesPerDay {
			end = model.MinutesPerDay
		}
		if start >= end {
			continue
		}

		// последняя минута дня относится к участку, который доходит до конца дня
		scanEnd := end
		if end == model.MinutesPerDay && end-start > 1 {
			scanEnd = model.EndOfDay
		}

		runStart := start
		runValue := density.At(start)

		for m := start + 1; m <= scanEnd; m++ {
			if m < scanEnd && density.At(m) == runValue {
				continue
			}

			runEnd := m
			if m == scanEnd {
				runEnd = end
			}
			if runEnd-runStart >= duration {
				buckets[runValue] = append(buckets[runValue], mustInterval(runStart, runEnd))
			}

			if m < scanEnd {
				runStart = m
				runValue = density.At(m)
			}
		}
	}

	for count := maxOptionals; count > 0; count-- {
		if len(buckets[count]) > 0 {
			return buckets[count], count
		}
	}

	return slices.Clone(required), 0
}
