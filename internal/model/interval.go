package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Границы дня в минутах
const (
	StartOfDay    = 0
	EndOfDay      = 24*60 - 1 // последняя минута дня (23:59)
	MinutesPerDay = 24 * 60
)

// ErrInvalidInterval возвращается при попытке построить некорректный интервал
var ErrInvalidInterval = errors.New("invalid interval")

// WholeDay интервал, покрывающий весь день
var WholeDay = Interval{start: StartOfDay, end: MinutesPerDay}

// Interval полуоткрытый отрезок [start, end) минут внутри одного дня.
// Интервал, доходящий до конца дня, имеет end == MinutesPerDay.
type Interval struct {
	start int
	end   int
}

// FromStartDuration создаёт интервал по началу и длительности
func FromStartDuration(start, duration int) (Interval, error) {
	if duration < 0 {
		return Interval{}, fmt.Errorf("%w: negative duration %d", ErrInvalidInterval, duration)
	}
	return newInterval(start, start+duration)
}

// FromStartEnd создаёт интервал по началу и концу.
// inclusive включает минуту end в интервал; результат не выходит за конец дня,
// поэтому [a, EndOfDay] и [a, MinutesPerDay] с inclusive дают один и тот же интервал.
func FromStartEnd(start, end int, inclusive bool) (Interval, error) {
	if inclusive {
		end++
		if end > MinutesPerDay {
			end = MinutesPerDay
		}
	}
	return newInterval(start, end)
}

func newInterval(start, end int) (Interval, error) {
	if start < StartOfDay || end > MinutesPerDay || start > end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}
	return Interval{start: start, end: end}, nil
}

// TimeInMinutes переводит часы и минуты в минуты от начала дня
func TimeInMinutes(hours, minutes int) int {
	return hours*60 + minutes
}

// Start возвращает первую минуту интервала
func (i Interval) Start() int {
	return i.start
}

// End возвращает минуту, следующую за последней минутой интервала
func (i Interval) End() int {
	return i.end
}

// Duration возвращает длину интервала в минутах
func (i Interval) Duration() int {
	return i.end - i.start
}

// TouchesEndOfDay проверяет, доходит ли интервал до конца дня
func (i Interval) TouchesEndOfDay() bool {
	return i.end == MinutesPerDay
}

// Overlaps проверяет пересечение двух интервалов
func (i Interval) Overlaps(other Interval) bool {
	return i.start < other.end && other.start < i.end
}

// Contains проверяет, что other целиком лежит внутри интервала
func (i Interval) Contains(other Interval) bool {
	return i.start <= other.start && other.end <= i.end
}

// ContainsMinute проверяет, попадает ли минута в интервал
func (i Interval) ContainsMinute(minute int) bool {
	return i.start <= minute && minute < i.end
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", FormatClock(i.start), FormatClock(i.end))
}

// CompareByStart упорядочивает интервалы по началу, затем по концу
func CompareByStart(a, b Interval) int {
	if a.start != b.start {
		return a.start - b.start
	}
	return a.end - b.end
}

// CompareByEnd упорядочивает интервалы по концу, затем по началу
func CompareByEnd(a, b Interval) int {
	if a.end != b.end {
		return a.end - b.end
	}
	return a.start - b.start
}

// FormatClock форматирует минуту дня как ЧЧ:ММ (конец дня - 24:00)
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

type intervalJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Start: i.start, End: i.end})
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := newInterval(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
