package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PurchaseModel represents the purchases table
type PurchaseModel struct {
	ID               string          `gorm:"primaryKey;size:36"`
	UserID           string          `gorm:"not null;size:64;index:idx_purchases_user"`
	OfferCode        *string         `gorm:"size:50"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency         string          `gorm:"not null;size:3"`
	PaymentReference string          `gorm:"not null;size:191;uniqueIndex:uk_purchases_payment_ref"`
	Items            datatypes.JSON  `gorm:"not null;comment:Snapshot of the purchased cart lines"`
	CreatedAt        time.Time       `gorm:"not null;index:idx_purchases_created"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}
