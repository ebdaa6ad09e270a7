package dto

import "time"

type LibraryContentTypeDTO struct {
	ContentTypeID   string    `json:"content_type_id"`
	ContentTypeName string    `json:"content_type_name"`
	GrantedAt       time.Time `json:"granted_at"`
}

// LibraryEntryDTO groups what a learner owns in one subject.
type LibraryEntryDTO struct {
	SubjectID    string                   `json:"subject_id"`
	SubjectTitle string                   `json:"subject_title"`
	SubjectSlug  string                   `json:"subject_slug"`
	ContentTypes []*LibraryContentTypeDTO `json:"content_types"`
}
