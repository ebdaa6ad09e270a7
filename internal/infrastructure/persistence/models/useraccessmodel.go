package models

import "time"

// UserAccessModel represents the user_access table
type UserAccessModel struct {
	ID            string    `gorm:"primaryKey;size:36"`
	UserID        string    `gorm:"not null;size:64;uniqueIndex:uk_user_access,priority:1"`
	SubjectID     string    `gorm:"not null;size:36;uniqueIndex:uk_user_access,priority:2"`
	ContentTypeID string    `gorm:"not null;size:36;uniqueIndex:uk_user_access,priority:3"`
	Source        string    `gorm:"not null;size:20"`
	PurchaseID    *string   `gorm:"size:36"`
	GrantedAt     time.Time `gorm:"not null"`
}

func (UserAccessModel) TableName() string {
	return "user_access"
}
