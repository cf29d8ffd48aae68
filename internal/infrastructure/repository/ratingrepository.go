package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/domain/user"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
)

type RatingRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewRatingRepository(gdb *gorm.DB) user.RatingRepository {
	return &RatingRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *RatingRepository) Save(ctx context.Context, rating *user.Rating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return rating.SetID(model.ID)
}

func (r *RatingRepository) GetByAdminID(ctx context.Context, adminID int64) ([]*user.Rating, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.RatingModel
	if err := tx.
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}

	ratings := make([]*user.Rating, 0, len(rows))
	for i := range rows {
		rating, err := r.mapper.RatingToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map rating (id=%d): %w", rows[i].ID, err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}
