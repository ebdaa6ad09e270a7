package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one line of a user's cart with the price captured when it was added.
type Item struct {
	id        string
	userID    string
	subjectID string
	line      Line
	price     decimal.Decimal
	createdAt time.Time
}

func NewItem(userID, subjectID string, line Line, price decimal.Decimal) (*Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if subjectID == "" {
		return nil, fmt.Errorf("subject ID is required")
	}
	if line == nil {
		return nil, ErrInvalidLine
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	return &Item{
		id:        uuid.NewString(),
		userID:    userID,
		subjectID: subjectID,
		line:      line,
		price:     price.Round(2),
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructItem(id, userID, subjectID string, line Line, price decimal.Decimal, createdAt time.Time) *Item {
	return &Item{
		id:        id,
		userID:    userID,
		subjectID: subjectID,
		line:      line,
		price:     price,
		createdAt: createdAt,
	}
}

func (i *Item) ID() string             { return i.id }
func (i *Item) UserID() string         { return i.userID }
func (i *Item) SubjectID() string      { return i.subjectID }
func (i *Item) Line() Line             { return i.line }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }

func (i *Item) IsBundle() bool {
	return i.line.Kind() == LineKindBundle
}

// ContentTypeID returns the content type of an individual line; bundles report false.
func (i *Item) ContentTypeID() (string, bool) {
	return ContentTypeOf(i.line)
}

// Matches reports whether the item is the same line as (subjectID, line).
func (i *Item) Matches(subjectID string, line Line) bool {
	return i.subjectID == subjectID && i.line == line
}

// Subtotal sums the captured prices of items.
func Subtotal(items []*Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.price)
	}
	return total
}
