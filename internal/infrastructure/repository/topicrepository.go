package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/domain/topic"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
	"deskbot/internal/shared/errors"
)

type TopicRepository struct {
	db     *gorm.DB
	mapper mappers.TopicMapper
}

func NewTopicRepository(gdb *gorm.DB) topic.TopicRepository {
	return &TopicRepository{
		db:     gdb,
		mapper: mappers.NewTopicMapper(),
	}
}

func (r *TopicRepository) Save(ctx context.Context, t *topic.Topic) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save topic: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TopicRepository) Delete(ctx context.Context, topicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TopicModel{}, topicID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("topic not found")
	}
	return nil
}

func (r *TopicRepository) GetByID(ctx context.Context, topicID uint) (*topic.Topic, error) {
	var model models.TopicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, topicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("topic not found")
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TopicRepository) GetByName(ctx context.Context, name string) (*topic.Topic, error) {
	var model models.TopicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("topic not found")
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListAll returns quick-action topics first, then by name, matching the order
// the topic menu renders in.
func (r *TopicRepository) ListAll(ctx context.Context) ([]*topic.Topic, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TopicModel
	if err := tx.
		Order("is_quick_action DESC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	topics := make([]*topic.Topic, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map topic (id=%d): %w", rows[i].ID, err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func (r *TopicRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TopicModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	return count, nil
}
