package purchase

import (
	"context"
	"errors"
)

var ErrPaymentAlreadyRecorded = errors.New("payment reference already recorded")

type Repository interface {
	// Create returns ErrPaymentAlreadyRecorded when the payment reference was used before.
	Create(ctx context.Context, purchase *Purchase) error
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*Purchase, int64, error)
}
