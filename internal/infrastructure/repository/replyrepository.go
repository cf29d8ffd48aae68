package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/domain/ticket"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReplyRepository(gdb *gorm.DB) ticket.ReplyRepository {
	return &ReplyRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}

	return reply.SetID(model.ID)
}

// GetByTicketID returns replies oldest first, the order a dialog reads in.
func (r *ReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ReplyModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get replies: %w", err)
	}

	replies := make([]*ticket.Reply, 0, len(rows))
	for i := range rows {
		reply, err := r.mapper.ReplyToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map reply (id=%d): %w", rows[i].ID, err)
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
