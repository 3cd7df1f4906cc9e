package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/calendar"
	"github.com/Freeeeeet/meeting_bot/internal/controller/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/render"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

const (
	promptMandatory = "👥 Перечислите обязательных участников через запятую.\n\nЕсли их нет, отправьте «-»."
	promptOptional  = "🙋 Перечислите желательных участников через запятую.\n\nЕсли их нет, отправьте «-»."
	promptEvents    = "📌 Присылайте занятость участников, по событию на строку:\n" +
		"09:00-10:30 Анна, Борис\n\n" +
		"Можно прислать файл .ics. Когда всё добавлено, нажмите «Найти время» или /find."
)

// HandleNewMeeting обрабатывает команду /newmeeting [дата]
func (h *Handlers) HandleNewMeeting(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	day := h.now()
	if args := commandArgs(update.Message.Text); args != "" {
		parsed, err := parseDate(args, day.Location())
		if err != nil {
			h.sendError(ctx, b, chatID, ErrorMessage(err))
			return
		}
		day = parsed
	}

	draft := service.NewMeetingDraft(day)
	h.startDraft(update.Message.From.ID, draft)

	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("🗓 Новая встреча на %s\n\n⏱ Сколько она длится? Выберите или напишите, например 45 или 1:30.",
			formatting.FormatDate(draft.Day())),
		durationKeyboard(),
	)
}

// handleDurationStep шаг диалога: длительность
func (h *Handlers) handleDurationStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	minutes, err := parseDuration(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	if err := h.applyDuration(update.Message.From.ID, minutes); err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("✅ Длительность: %s\n\n%s", formatting.FormatDuration(minutes), promptMandatory),
		skipKeyboard(CallbackSkipMandatory),
	)
}

// applyDuration задаёт длительность и переводит диалог к обязательным участникам
func (h *Handlers) applyDuration(telegramID int64, minutes int) error {
	draft, err := h.draft(telegramID)
	if err != nil {
		return err
	}
	if err := draft.SetDuration(minutes); err != nil {
		return err
	}
	h.stateManager.SetState(telegramID, state.StateMeetingMandatory)
	return nil
}

// handleMandatoryStep шаг диалога: обязательные участники
func (h *Handlers) handleMandatoryStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	draft, err := h.draft(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	if !isSkip(update.Message.Text) {
		names := calendar.ParseNames(update.Message.Text)
		if err := draft.AddMandatory(names...); err != nil {
			h.sendError(ctx, b, chatID, ErrorMessage(err))
			return
		}
	}

	h.stateManager.SetState(telegramID, state.StateMeetingOptional)
	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("✅ Обязательные: %s\n\n%s", formatting.FormatNames(draft.Mandatory()), promptOptional),
		skipKeyboard(CallbackSkipOptional),
	)
}

// handleOptionalStep шаг диалога: желательные участники
func (h *Handlers) handleOptionalStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	draft, err := h.draft(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	if !isSkip(update.Message.Text) {
		if err := draft.AddOptional(calendar.ParseNames(update.Message.Text)...); err != nil {
			h.sendError(ctx, b, chatID, ErrorMessage(err))
			return
		}
	}

	h.stateManager.SetState(telegramID, state.StateMeetingEvents)
	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("✅ Желательные: %s\n\n%s", formatting.FormatNames(draft.Optional()), promptEvents),
		eventsKeyboard(),
	)
}

// handleEventsStep шаг диалога: строки занятости
func (h *Handlers) handleEventsStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	draft, err := h.draft(update.Message.From.ID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	events, err := calendar.ParseEventLines(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, fmt.Sprintf("%s\n\n%v", ErrorMessage(err), err))
		return
	}
	total, err := draft.AddEvents(maxEventsPerDraft, events...)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("✅ Добавлено: %d. Всего %d %s.", len(events), total, formatting.PluralizeEvents(total)),
		eventsKeyboard(),
	)
}

// HandleAddOptional обрабатывает /addoptional <имена>
func (h *Handlers) HandleAddOptional(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}
	chatID := update.Message.Chat.ID

	draft, err := h.draft(update.Message.From.ID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	names := calendar.ParseNames(commandArgs(update.Message.Text))
	if len(names) == 0 {
		h.sendError(ctx, b, chatID, "❌ Укажите имена: /addoptional Анна, Борис")
		return
	}
	if err := draft.AddOptional(names...); err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	optional := draft.Optional()
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Желательные (%d %s): %s",
		len(optional), formatting.PluralizeAttendees(len(optional)), formatting.FormatNames(optional)))
}

// HandleDraft обрабатывает /draft
func (h *Handlers) HandleDraft(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	h.showDraft(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

func (h *Handlers) showDraft(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	draft, err := h.draft(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}
	h.sendMessageWithKeyboard(ctx, b, chatID, formatting.FormatDraft(draft), eventsKeyboard())
}

// HandleFind обрабатывает /find
func (h *Handlers) HandleFind(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	h.findAndReply(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

// findAndReply ищет окна по черновику и отвечает текстом и картинкой дня.
// Черновик остаётся в сессии: можно добавить события и искать снова.
func (h *Handlers) findAndReply(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	user, ok := h.lookupUser(ctx, b, chatID, telegramID)
	if !ok {
		return
	}

	draft, err := h.draft(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	result, err := h.meetingService.Find(ctx, user, draft)
	if err != nil {
		h.logger.Warn("Meeting search rejected",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	h.stateManager.SetState(telegramID, state.StateMeetingEvents)

	text := formatting.FormatProposal(result.Proposal)
	if !result.Saved {
		text += "\n\n⚠️ Не удалось сохранить результат в историю"
	}
	h.sendMessageWithKeyboard(ctx, b, chatID, text, eventsKeyboard())

	request, err := draft.Request()
	if err != nil {
		return
	}
	image, err := render.RenderDay(render.DayInput{
		Title:     fmt.Sprintf("%s, встреча на %s", formatting.FormatDate(draft.Day()), formatting.FormatDuration(request.Duration())),
		Events:    result.Events,
		Mandatory: request.Attendees(),
		Optional:  request.OptionalAttendees(),
		Windows:   result.Proposal.Windows,
	})
	if err != nil {
		h.logger.Error("Failed to render day image", zap.Error(err))
		return
	}
	h.sendPhoto(ctx, b, chatID, image, "🟢 подходящее время")
}

// HandleHistory обрабатывает /history
func (h *Handlers) HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	proposals, err := h.meetingService.History(ctx, user.ID, h.historyLimit)
	if err != nil {
		h.logger.Error("Failed to get history", zap.Int64("user_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось загрузить историю. Попробуйте позже.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatHistory(proposals))
}
