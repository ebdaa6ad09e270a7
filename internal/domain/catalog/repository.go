package catalog

import "context"

type SubjectRepository interface {
	Create(ctx context.Context, subject *Subject) error
	Update(ctx context.Context, subject *Subject) error
	// GetByID and GetBySlug return ErrSubjectNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Subject, error)
	GetBySlug(ctx context.Context, slug string) (*Subject, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*Subject, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter SubjectFilter) ([]*Subject, int64, error)
}

type SubjectFilter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ContentTypeRepository interface {
	Create(ctx context.Context, contentType *ContentType) error
	// GetByID returns ErrContentTypeNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*ContentType, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*ContentType, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*ContentType, error)
}

type SubjectContentRepository interface {
	Create(ctx context.Context, content *SubjectContent) error
	ListBySubject(ctx context.Context, subjectID string, activeOnly bool) ([]*SubjectContent, error)
	// AvailableContentTypes returns, per subject, the distinct content type IDs that have at
	// least one active content whose content type is active. Subjects without any are absent.
	AvailableContentTypes(ctx context.Context, subjectIDs []string) (map[string][]string, error)
}

type PricingRepository interface {
	// Upsert stores the price for (subject, content type), replacing any previous one.
	Upsert(ctx context.Context, pricing *ContentTypePricing) error
	// Get returns ErrPricingNotFound when the content type has no price for the subject.
	Get(ctx context.Context, subjectID, contentTypeID string) (*ContentTypePricing, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*ContentTypePricing, error)
}
