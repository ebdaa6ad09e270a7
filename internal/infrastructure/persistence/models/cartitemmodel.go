package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BundleLineKey is stored in line_key for bundle lines so that the unique index also
// covers them (content_type_id is NULL for bundles).
const BundleLineKey = "bundle"

// CartItemModel represents the cart_items table
type CartItemModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	UserID        string          `gorm:"not null;size:64;uniqueIndex:uk_cart_line,priority:1"`
	SubjectID     string          `gorm:"not null;size:36;uniqueIndex:uk_cart_line,priority:2"`
	LineKey       string          `gorm:"not null;size:36;uniqueIndex:uk_cart_line,priority:3;comment:content type id or 'bundle'"`
	ContentTypeID *string         `gorm:"size:36"`
	IsBundle      bool            `gorm:"not null;default:false"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:Price captured when the line was added"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
