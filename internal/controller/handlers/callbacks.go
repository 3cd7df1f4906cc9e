package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
)

// HandleCallbackQuery распределяет нажатия на inline кнопки
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	message := callback.Message.Message
	if message == nil {
		h.answerCallback(ctx, b, callback.ID, "❌ Сообщение устарело")
		return
	}

	chatID := message.Chat.ID
	telegramID := callback.From.ID
	data := callback.Data

	h.logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", telegramID))

	switch {
	case strings.HasPrefix(data, CallbackDuration):
		minutes, err := strconv.Atoi(strings.TrimPrefix(data, CallbackDuration))
		if err != nil {
			h.answerCallback(ctx, b, callback.ID, "❌ Неверный формат")
			return
		}
		if err := h.applyDuration(telegramID, minutes); err != nil {
			h.answerCallback(ctx, b, callback.ID, ErrorMessage(err))
			return
		}
		h.answerCallback(ctx, b, callback.ID, "")
		h.sendMessageWithKeyboard(ctx, b, chatID,
			fmt.Sprintf("✅ Длительность: %s\n\n%s", formatting.FormatDuration(minutes), promptMandatory),
			skipKeyboard(CallbackSkipMandatory),
		)

	case data == CallbackSkipMandatory:
		if _, err := h.draft(telegramID); err != nil {
			h.answerCallback(ctx, b, callback.ID, ErrorMessage(err))
			return
		}
		h.answerCallback(ctx, b, callback.ID, "")
		h.stateManager.SetState(telegramID, state.StateMeetingOptional)
		h.sendMessageWithKeyboard(ctx, b, chatID, promptOptional, skipKeyboard(CallbackSkipOptional))

	case data == CallbackSkipOptional:
		if _, err := h.draft(telegramID); err != nil {
			h.answerCallback(ctx, b, callback.ID, ErrorMessage(err))
			return
		}
		h.answerCallback(ctx, b, callback.ID, "")
		h.stateManager.SetState(telegramID, state.StateMeetingEvents)
		h.sendMessageWithKeyboard(ctx, b, chatID, promptEvents, eventsKeyboard())

	case data == CallbackShowDraft:
		h.answerCallback(ctx, b, callback.ID, "")
		h.showDraft(ctx, b, chatID, telegramID)

	case data == CallbackFind:
		h.answerCallback(ctx, b, callback.ID, "🔍 Ищу время...")
		h.findAndReply(ctx, b, chatID, telegramID)

	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		h.answerCallback(ctx, b, callback.ID, "")
	}
}
