package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubjectContent is one piece of material of a given content type within a subject.
// The set of content types a subject actually offers is derived from its active contents.
type SubjectContent struct {
	id            string
	subjectID     string
	contentTypeID string
	title         string
	resourceURL   string
	active        bool
	sortOrder     int
	createdAt     time.Time
}

func NewSubjectContent(subjectID, contentTypeID, title, resourceURL string, sortOrder int) (*SubjectContent, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("subject ID is required")
	}
	if contentTypeID == "" {
		return nil, fmt.Errorf("content type ID is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("content title is required")
	}

	return &SubjectContent{
		id:            uuid.NewString(),
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		title:         title,
		resourceURL:   resourceURL,
		active:        true,
		sortOrder:     sortOrder,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructSubjectContent(id, subjectID, contentTypeID, title, resourceURL string,
	active bool, sortOrder int, createdAt time.Time) *SubjectContent {
	return &SubjectContent{
		id:            id,
		subjectID:     subjectID,
		contentTypeID: contentTypeID,
		title:         title,
		resourceURL:   resourceURL,
		active:        active,
		sortOrder:     sortOrder,
		createdAt:     createdAt,
	}
}

func (c *SubjectContent) ID() string            { return c.id }
func (c *SubjectContent) SubjectID() string     { return c.subjectID }
func (c *SubjectContent) ContentTypeID() string { return c.contentTypeID }
func (c *SubjectContent) Title() string         { return c.title }
func (c *SubjectContent) ResourceURL() string   { return c.resourceURL }
func (c *SubjectContent) IsActive() bool        { return c.active }
func (c *SubjectContent) SortOrder() int        { return c.sortOrder }
func (c *SubjectContent) CreatedAt() time.Time  { return c.createdAt }
