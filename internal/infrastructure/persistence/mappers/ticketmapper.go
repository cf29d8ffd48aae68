package mappers

import (
	"time"

	"deskbot/internal/domain/ticket"
	vo "deskbot/internal/domain/ticket/valueobjects"
	"deskbot/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ReplyToModel(r *ticket.Reply) *models.ReplyModel
	ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
	HistoryToModel(h *ticket.StatusHistoryEntry) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistoryEntry, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		UserID:          t.UserID(),
		TopicID:         t.TopicID(),
		Body:            t.Body(),
		IsRead:          t.IsRead(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		IsAnonymous:     t.IsAnonymous(),
		AssignedAdminID: t.AssignedAdminID(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.TopicID,
		model.Body,
		model.IsRead,
		status,
		priority,
		model.IsAnonymous,
		model.AssignedAdminID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ReplyToModel(r *ticket.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		AuthorID:  r.AuthorID(),
		Text:      r.Text(),
		CreatedAt: r.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		FileID:    a.FileID(),
		Kind:      a.Kind().String(),
		LocalPath: a.LocalPath(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	kind, err := vo.NewMediaKind(model.Kind)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileID,
		kind,
		model.LocalPath,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.StatusHistoryEntry) *models.StatusHistoryModel {
	return &models.StatusHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		Status:    h.Status().String(),
		AdminID:   h.AdminID(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistoryEntry, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructStatusHistoryEntry(
		model.ID,
		model.TicketID,
		status,
		model.AdminID,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
