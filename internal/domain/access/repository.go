package access

import "context"

type Repository interface {
	// Grant inserts the grants, silently skipping any that already exist.
	Grant(ctx context.Context, grants []*UserAccess) error
	Has(ctx context.Context, userID, subjectID, contentTypeID string) (bool, error)
	OwnedContentTypes(ctx context.Context, userID, subjectID string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]*UserAccess, error)
}
