package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const (
	msgSubjectNotFound     = "Subject not found"
	msgContentTypeNotFound = "Content type not found"
)

func loadSubject(ctx context.Context, repo catalog.SubjectRepository, id string) (*catalog.Subject, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return s, nil
}

func loadContentType(ctx context.Context, repo catalog.ContentTypeRepository, id string) (*catalog.ContentType, error) {
	ct, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrContentTypeNotFound) {
			return nil, apperrors.NewNotFoundError(msgContentTypeNotFound)
		}
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	return ct, nil
}

// invalidate drops the cached detail view. A failed delete leaves the entry until its TTL.
func invalidate(ctx context.Context, cache SubjectDetailCache, log logger.Interface, slug string) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, slug); err != nil {
		log.Warnw("failed to invalidate subject cache", "error", err, "slug", slug)
	}
}
