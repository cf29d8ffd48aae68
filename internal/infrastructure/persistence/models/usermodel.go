package models

type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	Username       string `gorm:"size:100;index"`
	FirstName      string `gorm:"size:100"`
	LastName       string `gorm:"size:100"`
	IsBanned       bool   `gorm:"not null;default:false;index"`
	Language       string `gorm:"size:10;not null"`
	UrgentToday    int    `gorm:"not null;default:0"`
	LastUrgentDate string `gorm:"size:10"`
	RegisteredAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

type NoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	AdminID   int64  `gorm:"not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (NoteModel) TableName() string {
	return "user_notes"
}

type RatingModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	AdminID   int64  `gorm:"not null;index"`
	Score     int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RatingModel) TableName() string {
	return "ratings"
}
