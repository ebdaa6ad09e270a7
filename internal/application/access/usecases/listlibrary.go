package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/lumen-edu/lumen/internal/application/access/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type ListLibraryUseCase struct {
	accessRepo      access.Repository
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	logger          logger.Interface
}

func NewListLibraryUseCase(
	accessRepo access.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	logger logger.Interface,
) *ListLibraryUseCase {
	return &ListLibraryUseCase{
		accessRepo:      accessRepo,
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		logger:          logger,
	}
}

// Execute lists what the user owns grouped by subject, ordered by subject title.
func (uc *ListLibraryUseCase) Execute(ctx context.Context, user common.UserContext) ([]*dto.LibraryEntryDTO, error) {
	if err := user.Require(); err != nil {
		return nil, err
	}

	grants, err := uc.accessRepo.ListByUser(ctx, user.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list access grants", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to list access grants: %w", err)
	}
	if len(grants) == 0 {
		return []*dto.LibraryEntryDTO{}, nil
	}

	subjectIDs := make([]string, 0, len(grants))
	typeIDs := make([]string, 0, len(grants))
	for _, g := range grants {
		subjectIDs = append(subjectIDs, g.SubjectID())
		typeIDs = append(typeIDs, g.ContentTypeID())
	}

	subjects, err := uc.subjectRepo.GetByIDs(ctx, subjectIDs)
	if err != nil {
		uc.logger.Errorw("failed to load subjects", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}
	types, err := uc.contentTypeRepo.GetByIDs(ctx, typeIDs)
	if err != nil {
		uc.logger.Errorw("failed to load content types", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to load content types: %w", err)
	}

	entries := make(map[string]*dto.LibraryEntryDTO)
	for _, g := range grants {
		entry, ok := entries[g.SubjectID()]
		if !ok {
			entry = &dto.LibraryEntryDTO{SubjectID: g.SubjectID()}
			if s, found := subjects[g.SubjectID()]; found {
				entry.SubjectTitle = s.Title()
				entry.SubjectSlug = s.Slug()
			}
			entries[g.SubjectID()] = entry
		}
		item := &dto.LibraryContentTypeDTO{ContentTypeID: g.ContentTypeID(), GrantedAt: g.GrantedAt()}
		if ct, found := types[g.ContentTypeID()]; found {
			item.ContentTypeName = ct.Name()
		}
		entry.ContentTypes = append(entry.ContentTypes, item)
	}

	out := make([]*dto.LibraryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubjectTitle != out[j].SubjectTitle {
			return out[i].SubjectTitle < out[j].SubjectTitle
		}
		return out[i].SubjectID < out[j].SubjectID
	})
	return out, nil
}
