package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"deskbot/internal/domain/faq"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
	"deskbot/internal/shared/errors"
)

type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQRepository(gdb *gorm.DB) faq.EntryRepository {
	return &FAQRepository{
		db:     gdb,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Save(ctx context.Context, entry *faq.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save faq entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *FAQRepository) Delete(ctx context.Context, entryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FAQEntryModel{}, entryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("faq entry not found")
	}
	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, entryID uint) (*faq.Entry, error) {
	var model models.FAQEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("faq entry not found")
		}
		return nil, fmt.Errorf("failed to get faq entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FAQRepository) ListAll(ctx context.Context) ([]*faq.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.FAQEntryModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list faq entries: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *FAQRepository) Search(ctx context.Context, query string) ([]*faq.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var rows []models.FAQEntryModel
	if err := tx.
		Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ? OR LOWER(keywords) LIKE ?",
			pattern, pattern, pattern).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search faq entries: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *FAQRepository) toDomainList(rows []models.FAQEntryModel) ([]*faq.Entry, error) {
	entries := make([]*faq.Entry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map faq entry (id=%d): %w", rows[i].ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
