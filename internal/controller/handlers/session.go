package handlers

import (
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

// draft возвращает черновик встречи из сессии пользователя
func (h *Handlers) draft(telegramID int64) (*service.MeetingDraft, error) {
	value, ok := h.stateManager.GetData(telegramID, state.KeyDraft)
	if !ok {
		return nil, service.ErrNoDraft
	}
	draft, ok := value.(*service.MeetingDraft)
	if !ok || draft == nil {
		return nil, service.ErrNoDraft
	}
	return draft, nil
}

// startDraft начинает новый черновик и переводит диалог к выбору длительности
func (h *Handlers) startDraft(telegramID int64, draft *service.MeetingDraft) {
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetData(telegramID, state.KeyDraft, draft)
	h.stateManager.SetState(telegramID, state.StateMeetingDuration)
}
