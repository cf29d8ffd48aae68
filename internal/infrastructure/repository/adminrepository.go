package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/domain/admin"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
	"deskbot/internal/shared/errors"
)

type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
}

func NewAdminRepository(gdb *gorm.DB) admin.AdminRepository {
	return &AdminRepository{
		db:     gdb,
		mapper: mappers.NewAdminMapper(),
	}
}

func (r *AdminRepository) Save(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, userID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AdminModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("admin not found")
	}
	return nil
}

func (r *AdminRepository) GetByUserID(ctx context.Context, userID int64) (*admin.Admin, error) {
	var model models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.AdminModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return count > 0, nil
}

func (r *AdminRepository) ListAll(ctx context.Context) ([]*admin.Admin, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AdminModel
	if err := tx.Order("granted_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	admins := make([]*admin.Admin, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map admin (user_id=%d): %w", rows[i].UserID, err)
		}
		admins = append(admins, a)
	}
	return admins, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AdminModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
