package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/utils"
)

// TicketRepository implements the ticket.TicketRepository interface using
// GORM with Model/Mapper separation.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) ticket.TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("body", "is_read", "status", "priority", "is_anonymous", "assigned_admin_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 for an unknown id; callers treat read-back
	// as the success signal.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize, 10)
	var rows []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(rows, total)
}

func (r *TicketRepository) GetUserTickets(ctx context.Context, userID int64, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user tickets: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize, 10)
	var rows []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user tickets: %w", err)
	}

	return r.toDomainList(rows, total)
}

func (r *TicketRepository) CountByTopicID(ctx context.Context, topicID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("topic_id = ?", topicID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by topic: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	} else if filter.Open != nil {
		open := []string{vo.StatusNew.String(), vo.StatusInProgress.String()}
		if *filter.Open {
			query = query.Where("status IN ?", open)
		} else {
			query = query.Where("status NOT IN ?", open)
		}
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.AssignedAdminID != nil {
		query = query.Where("assigned_admin_id = ?", *filter.AssignedAdminID)
	}
	if filter.Unread != nil {
		query = query.Where("is_read = ?", !*filter.Unread)
	}
	return query
}

func (r *TicketRepository) toDomainList(rows []models.TicketModel, total int64) ([]*ticket.Ticket, int64, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map ticket (id=%d): %w", rows[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
