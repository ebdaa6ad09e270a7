package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OfferModel represents the offers table
type OfferModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	Code          string          `gorm:"not null;size:50;uniqueIndex:uk_offers_code"`
	Description   string          `gorm:"size:500"`
	DiscountType  string          `gorm:"not null;size:20;comment:percentage or fixed"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubjectID     *string         `gorm:"size:36"`
	ContentTypeID *string         `gorm:"size:36"`
	ValidFrom     time.Time       `gorm:"not null"`
	ValidUntil    time.Time       `gorm:"not null"`
	MaxUsage      *int
	CurrentUsage  int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true;index:idx_offers_active"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (OfferModel) TableName() string {
	return "offers"
}

// BeforeUpdate hook to update timestamp
func (m *OfferModel) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}
