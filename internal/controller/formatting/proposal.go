package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

// FormatNames перечисляет имена через запятую, "-" для пустого списка
func FormatNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// FormatWindows выводит окна по одному на строку
func FormatWindows(windows []model.Interval) string {
	if len(windows) == 0 {
		return "😔 Подходящего времени нет"
	}

	var sb strings.Builder
	for _, window := range windows {
		sb.WriteString("🟢 ")
		sb.WriteString(FormatInterval(window))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatProposal текст ответа на поиск
func FormatProposal(proposal *model.Proposal) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🗓 Встреча на %s\n", FormatDuration(proposal.DurationMinutes)))
	sb.WriteString(fmt.Sprintf("👥 Обязательные: %s\n", FormatNames(proposal.Mandatory)))
	sb.WriteString(fmt.Sprintf("🙋 Желательные: %s\n", FormatNames(proposal.Optional)))
	sb.WriteString(fmt.Sprintf("📌 Учтено: %d %s\n\n", proposal.EventCount, PluralizeEvents(proposal.EventCount)))

	if proposal.HasWindows() {
		count := len(proposal.Windows)
		sb.WriteString(fmt.Sprintf("Найдено %d %s:\n", count, PluralizeWindows(count)))
	}
	sb.WriteString(FormatWindows(proposal.Windows))

	if len(proposal.Optional) > 0 && proposal.HasWindows() {
		sb.WriteString(fmt.Sprintf("\n\n🙋 Свободны желательные участники: %d из %d",
			proposal.OptionalFree, len(proposal.Optional)))
	}

	return sb.String()
}

// FormatDraft показывает текущий черновик встречи
func FormatDraft(draft *service.MeetingDraft) string {
	var sb strings.Builder

	sb.WriteString("📝 Черновик встречи\n\n")
	sb.WriteString(fmt.Sprintf("📅 День: %s\n", FormatDate(draft.Day())))
	if minutes, ok := draft.Duration(); ok {
		sb.WriteString(fmt.Sprintf("⏱ Длительность: %s\n", FormatDuration(minutes)))
	} else {
		sb.WriteString("⏱ Длительность: не задана\n")
	}
	sb.WriteString(fmt.Sprintf("👥 Обязательные: %s\n", FormatNames(draft.Mandatory())))
	sb.WriteString(fmt.Sprintf("🙋 Желательные: %s\n", FormatNames(draft.Optional())))

	events := draft.Events()
	sb.WriteString(fmt.Sprintf("📌 События (%d):", len(events)))
	if len(events) == 0 {
		sb.WriteString(" нет")
	}
	for _, event := range events {
		sb.WriteString(fmt.Sprintf("\n• %s %s", event.When(), FormatNames(event.Attendees())))
	}

	return sb.String()
}

// FormatHistory список последних поисков
func FormatHistory(proposals []*model.Proposal) string {
	if len(proposals) == 0 {
		return "📭 История пуста. Начните с /newmeeting"
	}

	var sb strings.Builder
	sb.WriteString("🕘 Последние поиски:\n")
	for i, proposal := range proposals {
		sb.WriteString(fmt.Sprintf("\n%d. %s, %s, %s\n",
			i+1,
			FormatDateTime(proposal.CreatedAt),
			FormatDuration(proposal.DurationMinutes),
			FormatNames(proposal.Mandatory),
		))
		if !proposal.HasWindows() {
			sb.WriteString("   нет подходящего времени\n")
			continue
		}
		windows := make([]string, 0, len(proposal.Windows))
		for _, window := range proposal.Windows {
			windows = append(windows, window.String())
		}
		sb.WriteString("   " + strings.Join(windows, ", ") + "\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
