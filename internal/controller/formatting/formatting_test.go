package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, start, end int) model.Interval {
	t.Helper()
	i, err := model.FromStartEnd(start, end, false)
	require.NoError(t, err)
	return i
}

func TestPluralizeWindows(t *testing.T) {
	tests := map[int]string{
		1: "окно", 2: "окна", 4: "окна", 5: "окон",
		11: "окон", 12: "окон", 21: "окно", 22: "окна", 111: "окон",
	}
	for count, want := range tests {
		assert.Equal(t, want, PluralizeWindows(count), "count %d", count)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 мин", FormatDuration(45))
	assert.Equal(t, "1 ч", FormatDuration(60))
	assert.Equal(t, "1 ч 30 мин", FormatDuration(90))
	assert.Equal(t, "24 ч", FormatDuration(model.MinutesPerDay))
}

func TestFormatInterval(t *testing.T) {
	assert.Equal(t, "09:00-10:30 (1 ч 30 мин)", FormatInterval(window(t, 540, 630)))
	assert.Equal(t, "23:00-24:00 (1 ч)", FormatInterval(window(t, 1380, model.MinutesPerDay)))
}

func TestFormatProposal(t *testing.T) {
	proposal := &model.Proposal{
		DurationMinutes: 30,
		Mandatory:       []string{"Анна"},
		Optional:        []string{"Борис", "Вера"},
		EventCount:      3,
		OptionalFree:    1,
		Windows:         []model.Interval{window(t, 540, 600), window(t, 720, 780)},
	}

	text := FormatProposal(proposal)

	assert.Contains(t, text, "Встреча на 30 мин")
	assert.Contains(t, text, "Обязательные: Анна")
	assert.Contains(t, text, "Желательные: Борис, Вера")
	assert.Contains(t, text, "Учтено: 3 события")
	assert.Contains(t, text, "Найдено 2 окна:")
	assert.Contains(t, text, "🟢 09:00-10:00 (1 ч)")
	assert.Contains(t, text, "Свободны желательные участники: 1 из 2")
}

func TestFormatProposal_NoWindows(t *testing.T) {
	text := FormatProposal(&model.Proposal{DurationMinutes: 60, Windows: []model.Interval{}})

	assert.Contains(t, text, "Подходящего времени нет")
	assert.Contains(t, text, "Обязательные: -")
	assert.NotContains(t, text, "Найдено")
}

func TestFormatDraft(t *testing.T) {
	draft := service.NewMeetingDraft(testDay)
	assert.Contains(t, FormatDraft(draft), "Длительность: не задана")

	require.NoError(t, draft.SetDuration(90))
	require.NoError(t, draft.AddMandatory("Анна", "Борис"))
	draft.AddEvent(model.NewEvent("", window(t, 540, 630), "Борис", "Анна"))

	text := FormatDraft(draft)
	assert.Contains(t, text, "День: 02.03.2026")
	assert.Contains(t, text, "Длительность: 1 ч 30 мин")
	assert.Contains(t, text, "События (1):")
	assert.Contains(t, text, "• 09:00-10:30 Анна, Борис")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, FormatHistory(nil), "История пуста")

	created := time.Date(2026, 5, 4, 14, 30, 0, 0, time.UTC)
	text := FormatHistory([]*model.Proposal{
		{CreatedAt: created, DurationMinutes: 60, Mandatory: []string{"Анна"}, Windows: []model.Interval{window(t, 600, 720)}},
		{CreatedAt: created, DurationMinutes: 30},
	})

	assert.Contains(t, text, "1. 04.05.2026 14:30, 1 ч, Анна")
	assert.Contains(t, text, "10:00-12:00")
	assert.Contains(t, text, "нет подходящего времени")
}
