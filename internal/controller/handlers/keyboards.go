package handlers

import (
	"strconv"

	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/meeting_bot/internal/controller/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/keyboard"
)

func durationKeyboard() *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(durationPresets))
	for _, minutes := range durationPresets {
		buttons = append(buttons, keyboard.Button(
			formatting.FormatDuration(minutes),
			CallbackDuration+strconv.Itoa(minutes),
		))
	}
	return keyboard.NewBuilder().Grid(3, buttons...).Build()
}

func skipKeyboard(callbackData string) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("⏭ Пропустить", callbackData)).
		Build()
}

func eventsKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("📝 Черновик", CallbackShowDraft),
			keyboard.Button("🔍 Найти время", CallbackFind),
		).
		Build()
}
