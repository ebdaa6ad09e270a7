package offer

import "context"

type Repository interface {
	Create(ctx context.Context, offer *Offer) error
	Update(ctx context.Context, offer *Offer) error
	Delete(ctx context.Context, id string) error
	// GetByID and GetByCode return ErrOfferNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Offer, error)
	GetByCode(ctx context.Context, code string) (*Offer, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Offer, int64, error)
	// IncrementUsage atomically bumps the usage counter unless max usage is reached,
	// returning ErrUsageExhausted in that case.
	IncrementUsage(ctx context.Context, id string) error
}

type ListFilter struct {
	Active   *bool
	Page     int
	PageSize int
}
