package usecases

import (
	"context"

	"deskbot/internal/domain/admin"
	"deskbot/internal/domain/faq"
	"deskbot/internal/shared/errors"
	"deskbot/internal/shared/logger"
)

type EntryView struct {
	EntryID  uint
	Question string
	Answer   string
	TopicID  uint
}

type AddEntryCommand struct {
	AdminID  int64
	Question string
	Answer   string
	TopicID  uint
	Keywords string
}

type RemoveEntryCommand struct {
	AdminID int64
	EntryID uint
}

type AddEntryExecutor interface {
	Execute(ctx context.Context, cmd AddEntryCommand) (*EntryView, error)
}

type RemoveEntryExecutor interface {
	Execute(ctx context.Context, cmd RemoveEntryCommand) error
}

type ListEntriesExecutor interface {
	Execute(ctx context.Context) ([]EntryView, error)
}

type SearchEntriesExecutor interface {
	Execute(ctx context.Context, query string) ([]EntryView, error)
}

type GetEntryExecutor interface {
	Execute(ctx context.Context, entryID uint) (*EntryView, error)
}

func toView(e *faq.Entry) EntryView {
	return EntryView{
		EntryID:  e.ID(),
		Question: e.Question(),
		Answer:   e.Answer(),
		TopicID:  e.TopicID(),
	}
}

// AddEntryUseCase creates an FAQ entry, admin only.
type AddEntryUseCase struct {
	entryRepo faq.EntryRepository
	adminRepo admin.AdminRepository
	logger    logger.Interface
}

func NewAddEntryUseCase(
	entryRepo faq.EntryRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *AddEntryUseCase {
	return &AddEntryUseCase{
		entryRepo: entryRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *AddEntryUseCase) Execute(ctx context.Context, cmd AddEntryCommand) (*EntryView, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errors.NewForbiddenError("only admins can manage the FAQ")
	}

	entry, err := faq.NewEntry(cmd.Question, cmd.Answer, cmd.TopicID, cmd.Keywords)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.entryRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save faq entry", "error", err)
		return nil, err
	}

	uc.logger.Infow("faq entry added", "entry_id", entry.ID(), "admin_id", cmd.AdminID)
	view := toView(entry)
	return &view, nil
}

// RemoveEntryUseCase deletes an FAQ entry, admin only.
type RemoveEntryUseCase struct {
	entryRepo faq.EntryRepository
	adminRepo admin.AdminRepository
	logger    logger.Interface
}

func NewRemoveEntryUseCase(
	entryRepo faq.EntryRepository,
	adminRepo admin.AdminRepository,
	logger logger.Interface,
) *RemoveEntryUseCase {
	return &RemoveEntryUseCase{
		entryRepo: entryRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *RemoveEntryUseCase) Execute(ctx context.Context, cmd RemoveEntryCommand) error {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, cmd.AdminID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return errors.NewForbiddenError("only admins can manage the FAQ")
	}

	if _, err := uc.entryRepo.GetByID(ctx, cmd.EntryID); err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, cmd.EntryID); err != nil {
		uc.logger.Errorw("failed to delete faq entry", "error", err, "entry_id", cmd.EntryID)
		return err
	}

	uc.logger.Infow("faq entry removed", "entry_id", cmd.EntryID, "admin_id", cmd.AdminID)
	return nil
}

// ListEntriesUseCase returns the whole catalog for the FAQ menu.
type ListEntriesUseCase struct {
	entryRepo faq.EntryRepository
	logger    logger.Interface
}

func NewListEntriesUseCase(entryRepo faq.EntryRepository, logger logger.Interface) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context) ([]EntryView, error) {
	entries, err := uc.entryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toView(e))
	}
	return views, nil
}

// SearchEntriesUseCase runs the user-facing substring search.
type SearchEntriesUseCase struct {
	entryRepo faq.EntryRepository
	logger    logger.Interface
}

func NewSearchEntriesUseCase(entryRepo faq.EntryRepository, logger logger.Interface) *SearchEntriesUseCase {
	return &SearchEntriesUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *SearchEntriesUseCase) Execute(ctx context.Context, query string) ([]EntryView, error) {
	if len(query) == 0 {
		return nil, errors.NewValidationError("search query is required")
	}

	entries, err := uc.entryRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toView(e))
	}
	return views, nil
}

// GetEntryUseCase loads a single entry for display.
type GetEntryUseCase struct {
	entryRepo faq.EntryRepository
	logger    logger.Interface
}

func NewGetEntryUseCase(entryRepo faq.EntryRepository, logger logger.Interface) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *GetEntryUseCase) Execute(ctx context.Context, entryID uint) (*EntryView, error) {
	entry, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	view := toView(entry)
	return &view, nil
}
