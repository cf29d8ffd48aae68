package models

type FAQEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	TopicID   uint   `gorm:"index"`
	Keywords  string `gorm:"size:500"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FAQEntryModel) TableName() string {
	return "faq_entries"
}
