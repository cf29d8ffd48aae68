package models

type TopicModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;size:100;not null"`
	Description   string `gorm:"type:text"`
	IsQuickAction bool   `gorm:"not null;default:false"`
	IsUrgent      bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TopicModel) TableName() string {
	return "topics"
}
