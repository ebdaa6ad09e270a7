package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
)

// labelResolver looks up the subject and content type names shown next to cart lines.
type labelResolver struct {
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
}

func (r labelResolver) resolve(ctx context.Context, items []*cart.Item) (map[string]dto.ItemLabels, error) {
	labels := make(map[string]dto.ItemLabels, len(items))
	if len(items) == 0 {
		return labels, nil
	}

	subjectIDs := make([]string, 0, len(items))
	typeIDs := make([]string, 0, len(items))
	for _, it := range items {
		subjectIDs = append(subjectIDs, it.SubjectID())
		if ctID, ok := it.ContentTypeID(); ok {
			typeIDs = append(typeIDs, ctID)
		}
	}

	subjects, err := r.subjectRepo.GetByIDs(ctx, subjectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}
	types := map[string]*catalog.ContentType{}
	if len(typeIDs) > 0 {
		types, err = r.contentTypeRepo.GetByIDs(ctx, typeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load content types: %w", err)
		}
	}

	for _, it := range items {
		var l dto.ItemLabels
		if s, ok := subjects[it.SubjectID()]; ok {
			l.SubjectTitle = s.Title()
			l.SubjectSlug = s.Slug()
		}
		if ctID, ok := it.ContentTypeID(); ok {
			if ct, found := types[ctID]; found {
				l.ContentTypeName = ct.Name()
			}
		}
		labels[it.ID()] = l
	}
	return labels, nil
}
