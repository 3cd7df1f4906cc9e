package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/finder"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// ProposalStore хранилище результатов поиска
type ProposalStore interface {
	Save(ctx context.Context, proposal *model.Proposal) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Proposal, error)
}

// MeetingResult ответ на запрос поиска
type MeetingResult struct {
	Proposal    *model.Proposal
	Explanation finder.Explanation
	Events      []model.Event
	Saved       bool // false, если предложение не удалось сохранить в историю
}

type MeetingService struct {
	proposals ProposalStore
	logger    *zap.Logger
}

func NewMeetingService(proposals ProposalStore, logger *zap.Logger) *MeetingService {
	return &MeetingService{
		proposals: proposals,
		logger:    logger,
	}
}

// Find подбирает окна для черновика и записывает результат в историю пользователя.
// Ошибка сохранения не мешает вернуть ответ.
func (s *MeetingService) Find(ctx context.Context, user *model.User, draft *MeetingDraft) (*MeetingResult, error) {
	if user == nil {
		return nil, ErrUserNotFound
	}
	if draft == nil {
		return nil, ErrNoDraft
	}

	request, err := draft.Request()
	if err != nil {
		return nil, err
	}

	events := draft.Events()
	explanation := finder.Explain(events, request)

	proposal := &model.Proposal{
		UserID:          user.ID,
		DurationMinutes: request.Duration(),
		Mandatory:       request.Attendees().Sorted(),
		Optional:        request.OptionalAttendees().Sorted(),
		EventCount:      len(events),
		OptionalFree:    explanation.OptionalFree,
		Windows:         explanation.Windows,
	}

	result := &MeetingResult{
		Proposal:    proposal,
		Explanation: explanation,
		Events:      events,
	}

	if err := s.proposals.Save(ctx, proposal); err != nil {
		s.logger.Error("Failed to save proposal",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return result, nil
	}
	result.Saved = true

	s.logger.Info("Meeting times found",
		zap.Int64("user_id", user.ID),
		zap.String("proposal_id", proposal.ID.String()),
		zap.Int("duration", proposal.DurationMinutes),
		zap.Int("events", proposal.EventCount),
		zap.Int("windows", len(proposal.Windows)),
		zap.Int("optional_free", proposal.OptionalFree),
	)

	return result, nil
}

// History возвращает последние limit предложений пользователя
func (s *MeetingService) History(ctx context.Context, userID int64, limit int) ([]*model.Proposal, error) {
	if limit < 1 {
		limit = 1
	}

	proposals, err := s.proposals.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get proposal history: %w", err)
	}

	return proposals, nil
}
