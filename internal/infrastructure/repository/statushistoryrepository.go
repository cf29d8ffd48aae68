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

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusHistoryRepository(gdb *gorm.DB) ticket.StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusHistoryRepository) Save(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

// GetByTicketID returns history newest first, the order the audit view shows.
func (r *StatusHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.StatusHistoryModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}

	entries := make([]*ticket.StatusHistoryEntry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.HistoryToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map status history entry (id=%d): %w", rows[i].ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
