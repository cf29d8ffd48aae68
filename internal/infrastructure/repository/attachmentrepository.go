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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(gdb *gorm.DB) ticket.AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment.SetID(model.ID)
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AttachmentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map attachment (id=%d): %w", rows[i].ID, err)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *AttachmentRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.AttachmentModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}
	return count, nil
}
