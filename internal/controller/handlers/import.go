package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/calendar"
	"github.com/Freeeeeet/meeting_bot/internal/controller/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
)

// IsDocument отбирает сообщения с файлом для HandleDocument
func IsDocument(update *models.Update) bool {
	return update.Message != nil && update.Message.Document != nil
}

// HandleDocument импортирует события из присланного .ics в черновик.
// Подпись к файлу задаёт владельца календаря, иначе берётся имя пользователя.
func (h *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	document := update.Message.Document

	if !isCalendarFile(document.FileName, document.MimeType) {
		h.sendError(ctx, b, chatID, ErrorMessage(errNotCalendar))
		return
	}
	if document.FileSize > maxCalendarFileSize {
		h.sendError(ctx, b, chatID, "❌ Файл слишком большой")
		return
	}

	draft, err := h.draft(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}
	if h.stateManager.GetState(telegramID) != state.StateMeetingEvents {
		h.sendError(ctx, b, chatID, "❌ Сначала укажите длительность и участников")
		return
	}

	owner := strings.TrimSpace(update.Message.Caption)
	if owner == "" {
		owner = user.DisplayName()
	}

	body, err := h.downloadFile(ctx, b, document.FileID)
	if err != nil {
		h.logger.Error("Failed to download calendar", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось скачать файл. Попробуйте позже.")
		return
	}
	defer body.Close()

	events, err := calendar.ParseICS(io.LimitReader(body, maxCalendarFileSize), draft.Day(), owner)
	if err != nil {
		h.logger.Warn("Failed to parse calendar", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось прочитать календарь")
		return
	}
	total, err := draft.AddEvents(maxEventsPerDraft, events...)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	h.logger.Info("Calendar imported",
		zap.Int64("telegram_id", telegramID),
		zap.String("owner", owner),
		zap.Int("events", len(events)))

	h.sendMessageWithKeyboard(ctx, b, chatID,
		fmt.Sprintf("📥 Из календаря %s на %s: %d %s. Всего %d %s.",
			owner, formatting.FormatDate(draft.Day()),
			len(events), formatting.PluralizeEvents(len(events)),
			total, formatting.PluralizeEvents(total)),
		eventsKeyboard(),
	)
}

// downloadFile скачивает файл из Telegram
func (h *Handlers) downloadFile(ctx context.Context, b *bot.Bot, fileID string) (io.ReadCloser, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.FileDownloadLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
