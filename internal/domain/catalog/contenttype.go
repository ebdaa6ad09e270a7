package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType is a global category of course material (video, notes, Q&A, essay structures).
type ContentType struct {
	id        string
	name      string
	slug      string
	active    bool
	sortOrder int
	createdAt time.Time
}

func NewContentType(name, slug string, sortOrder int) (*ContentType, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(strings.ToLower(slug))
	if name == "" {
		return nil, fmt.Errorf("content type name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("content type slug is required")
	}
	if len(name) > 100 || len(slug) > 100 {
		return nil, fmt.Errorf("content type name or slug too long (max 100 characters)")
	}

	return &ContentType{
		id:        uuid.NewString(),
		name:      name,
		slug:      slug,
		active:    true,
		sortOrder: sortOrder,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructContentType(id, name, slug string, active bool, sortOrder int, createdAt time.Time) *ContentType {
	return &ContentType{
		id:        id,
		name:      name,
		slug:      slug,
		active:    active,
		sortOrder: sortOrder,
		createdAt: createdAt,
	}
}

func (c *ContentType) ID() string           { return c.id }
func (c *ContentType) Name() string         { return c.name }
func (c *ContentType) Slug() string         { return c.slug }
func (c *ContentType) IsActive() bool       { return c.active }
func (c *ContentType) SortOrder() int       { return c.sortOrder }
func (c *ContentType) CreatedAt() time.Time { return c.createdAt }
