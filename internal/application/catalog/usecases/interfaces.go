package usecases

import (
	"context"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
)

// SubjectDetailCache stores rendered subject detail views keyed by slug.
type SubjectDetailCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, slug string) (*dto.SubjectDetailDTO, error)
	Set(ctx context.Context, slug string, detail *dto.SubjectDetailDTO) error
	Delete(ctx context.Context, slug string) error
}

// MarkdownRenderer turns a subject description into sanitized HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}
