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

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewNoteRepository(gdb *gorm.DB) user.NoteRepository {
	return &NoteRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *NoteRepository) Save(ctx context.Context, note *user.Note) error {
	model := r.mapper.NoteToModel(note)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	return note.SetID(model.ID)
}

func (r *NoteRepository) GetByUserID(ctx context.Context, userID int64) ([]*user.Note, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.NoteModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	notes := make([]*user.Note, 0, len(rows))
	for i := range rows {
		note, err := r.mapper.NoteToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map note (id=%d): %w", rows[i].ID, err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}
