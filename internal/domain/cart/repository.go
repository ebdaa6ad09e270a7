package cart

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	// ListByUser returns the user's items oldest first.
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	// FindLine returns nil, nil when the user has no such line.
	FindLine(ctx context.Context, userID, subjectID string, line Line) (*Item, error)
	// The Delete* methods report how many rows were removed. Every filter includes the user.
	DeleteByID(ctx context.Context, userID, itemID string) (int64, error)
	DeleteLine(ctx context.Context, userID, subjectID string, line Line) (int64, error)
	DeleteIndividualBySubject(ctx context.Context, userID, subjectID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
