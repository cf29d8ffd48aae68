package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          int64  `gorm:"not null;index"`
	TopicID         uint   `gorm:"not null;index"`
	Body            string `gorm:"type:text;not null"`
	IsRead          bool   `gorm:"not null;default:false;index"`
	Status          string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	IsAnonymous     bool   `gorm:"not null;default:false"`
	AssignedAdminID *int64 `gorm:"index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ReplyModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  int64  `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

type AttachmentModel struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"not null;index"`
	FileID    string  `gorm:"size:255;not null"`
	Kind      string  `gorm:"size:20;not null"`
	LocalPath *string `gorm:"size:500"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

type StatusHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Status    string `gorm:"size:20;not null"`
	AdminID   *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return "ticket_status_history"
}
