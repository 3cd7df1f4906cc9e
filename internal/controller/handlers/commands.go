package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
)

const helpText = "📚 Справка по командам:\n\n" +
	"/newmeeting [дата] - Новая встреча (по умолчанию на сегодня)\n" +
	"/addoptional <имена> - Добавить желательных участников\n" +
	"/draft - Показать черновик\n" +
	"/find - Найти время\n" +
	"/history - Последние поиски\n" +
	"/cancel - Удалить черновик\n" +
	"/help - Показать эту справку\n\n" +
	"Занятость присылайте строками:\n" +
	"09:00-10:30 Анна, Борис\n" +
	"14:00-24:00 Вера\n\n" +
	"Можно прислать файл календаря .ics, подпись к файлу - имя его владельца."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From

	// Регистрируем пользователя
	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)

	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Я подбираю время встречи на один день: все обязательные участники свободны, "+
			"а желательных свободно как можно больше.\n\n"+
			"Начните с /newmeeting\n\n%s",
		registeredUser.DisplayName(),
		helpText,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - удаление черновика и выход из диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if _, err := h.draft(telegramID); err != nil && h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Черновик удалён.\n\nИспользуйте /newmeeting, чтобы начать заново.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateMeetingDuration:
		h.handleDurationStep(ctx, b, update)
	case state.StateMeetingMandatory:
		h.handleMandatoryStep(ctx, b, update)
	case state.StateMeetingOptional:
		h.handleOptionalStep(ctx, b, update)
	case state.StateMeetingEvents:
		h.handleEventsStep(ctx, b, update)
	default:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🤔 Не понимаю. Начните с /newmeeting или посмотрите /help")
	}
}
