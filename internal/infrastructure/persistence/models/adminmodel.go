package models

type AdminModel struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	GrantedBy int64 `gorm:"not null"`
	GrantedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}
