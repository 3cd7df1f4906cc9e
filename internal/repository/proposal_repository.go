package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/repository/base"
)

// ProposalRepository хранит результаты поиска времени встреч
type ProposalRepository struct {
	*base.Repository
}

func NewProposalRepository(db base.DB) *ProposalRepository {
	return &ProposalRepository{Repository: base.NewRepository(db)}
}

// Save сохраняет предложение. ID генерируется, если не задан.
func (r *ProposalRepository) Save(ctx context.Context, proposal *model.Proposal) error {
	if proposal.ID == uuid.Nil {
		proposal.ID = uuid.New()
	}

	windows, err := json.Marshal(proposal.Windows)
	if err != nil {
		return fmt.Errorf("marshal windows: %w", err)
	}

	query := `
		INSERT INTO proposals (id, user_id, duration_minutes, mandatory, optional, event_count, optional_free, windows)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = r.QueryRow(
		ctx, query,
		proposal.ID,
		proposal.UserID,
		proposal.DurationMinutes,
		nonNil(proposal.Mandatory),
		nonNil(proposal.Optional),
		proposal.EventCount,
		proposal.OptionalFree,
		windows,
	).Scan(&proposal.CreatedAt)

	if err != nil {
		return fmt.Errorf("save proposal: %w", err)
	}

	return nil
}

// GetByID получает предложение по ID
func (r *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	query := `
		SELECT id, user_id, duration_minutes, mandatory, optional, event_count, optional_free, windows, created_at
		FROM proposals
		WHERE id = $1
	`

	proposal, err := scanProposal(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}

	return proposal, nil
}

// ListByUser возвращает последние limit предложений пользователя, новые первыми
func (r *ProposalRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Proposal, error) {
	query := `
		SELECT id, user_id, duration_minutes, mandatory, optional, event_count, optional_free, windows, created_at
		FROM proposals
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	proposals := make([]*model.Proposal, 0, limit)
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposals = append(proposals, proposal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}

	return proposals, nil
}

// DeleteByUser удаляет историю пользователя
func (r *ProposalRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	deleted, err := r.ExecAffected(ctx, `DELETE FROM proposals WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete proposals: %w", err)
	}
	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProposal(row rowScanner) (*model.Proposal, error) {
	var (
		proposal model.Proposal
		windows  []byte
	)

	err := row.Scan(
		&proposal.ID,
		&proposal.UserID,
		&proposal.DurationMinutes,
		&proposal.Mandatory,
		&proposal.Optional,
		&proposal.EventCount,
		&proposal.OptionalFree,
		&windows,
		&proposal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(windows, &proposal.Windows); err != nil {
		return nil, fmt.Errorf("unmarshal windows: %w", err)
	}

	return &proposal, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
