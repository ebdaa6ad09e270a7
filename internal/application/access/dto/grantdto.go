package dto

import (
	"time"

	"github.com/lumen-edu/lumen/internal/domain/access"
)

type AccessGrantDTO struct {
	UserID        string    `json:"user_id"`
	SubjectID     string    `json:"subject_id"`
	ContentTypeID string    `json:"content_type_id"`
	Source        string    `json:"source"`
	GrantedAt     time.Time `json:"granted_at"`
}

func ToAccessGrantDTO(a *access.UserAccess) *AccessGrantDTO {
	if a == nil {
		return nil
	}
	return &AccessGrantDTO{
		UserID:        a.UserID(),
		SubjectID:     a.SubjectID(),
		ContentTypeID: a.ContentTypeID(),
		Source:        string(a.Source()),
		GrantedAt:     a.GrantedAt(),
	}
}
