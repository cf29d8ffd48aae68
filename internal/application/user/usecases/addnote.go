package usecases

import (
	"context"
	"time"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type AddNoteCommand struct {
	UserID  int64
	AdminID int64
	Text    string
}

type AddNoteResult struct {
	NoteID    uint
	CreatedAt time.Time
}

// AddNoteUseCase attaches an internal admin note to a user. Notes are
// never shown to the user themselves.
type AddNoteUseCase struct {
	noteRepo  user.NoteRepository
	userRepo  user.UserRepository
	adminRepo admin.AdminRepository
	logger    logger.Interface
}

func NewAddNoteUseCase(
	noteRepo user.NoteRepository,
	userRepo user.UserRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can add notes")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	note, err := user.NewNote(cmd.UserID, cmd.AdminID, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Save(ctx, note); err != nil {
		uc.logger.Errorw("failed to save note", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("note added", "note_id", note.ID(), "user_id", cmd.UserID, "admin_id", cmd.AdminID)
	return &AddNoteResult{NoteID: note.ID(), CreatedAt: note.CreatedAt()}, nil
}
