package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskbot/internal/domain/user"
	"deskbot/internal/infrastructure/persistence/mappers"
	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/db"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/utils"
)

// UserRepository implements the user.UserRepository interface using GORM
// with Model/Mapper separation.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) user.UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("username", "first_name", "last_name", "is_banned", "language", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	p := utils.ValidatePagination(page, pageSize, 10)
	var rows []models.UserModel
	if err := tx.
		Order("registered_at DESC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) ListNotBanned(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.UserModel
	if err := tx.
		Where("is_banned = ?", false).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *UserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.UserModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainList(rows)
}

// ConsumeUrgentQuota performs the reset-check-increment as one transaction on
// the user row so concurrent sessions cannot double-spend the daily quota.
func (r *UserRepository) ConsumeUrgentQuota(ctx context.Context, userID int64, max int, today string) error {
	gdb := db.GetTxFromContext(ctx, r.db)

	return gdb.Transaction(func(tx *gorm.DB) error {
		query := tx
		// sqlite serializes writers on its own; the row lock only exists
		// as SQL syntax on mysql.
		if tx.Dialector.Name() == "mysql" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var model models.UserModel
		if err := query.First(&model, "id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("user not found")
			}
			return fmt.Errorf("failed to lock user row: %w", err)
		}

		count := model.UrgentToday
		if model.LastUrgentDate != today {
			count = 0
		}
		if count >= max {
			return errors.NewQuotaExceededError("daily urgent limit reached")
		}

		return tx.
			Model(&models.UserModel{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"urgent_today":     count + 1,
				"last_urgent_date": today,
			}).Error
	})
}

func (r *UserRepository) UrgentQuotaUsed(ctx context.Context, userID int64, today string) (int, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.NewNotFoundError("user not found")
		}
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if model.LastUrgentDate != today {
		return 0, nil
	}
	return model.UrgentToday, nil
}

func (r *UserRepository) toDomainList(rows []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map user (id=%d): %w", rows[i].ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}
