package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubjectModel represents the subjects table
type SubjectModel struct {
	ID              string              `gorm:"primaryKey;size:36"`
	Title           string              `gorm:"not null;size:200"`
	Slug            string              `gorm:"not null;size:100;uniqueIndex:uk_subjects_slug"`
	Description     string              `gorm:"type:text"`
	BundlePrice     decimal.NullDecimal `gorm:"type:decimal(10,2);comment:Bundle price, NULL when no bundle is priced"`
	IsBundleEnabled bool                `gorm:"not null;default:false"`
	IsActive        bool                `gorm:"not null;default:true;index:idx_subjects_active"`
	CreatedAt       time.Time           `gorm:"not null"`
	UpdatedAt       time.Time           `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SubjectModel) TableName() string {
	return "subjects"
}

// BeforeCreate hook to set timestamps
func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	return nil
}

// ContentTypeModel represents the content_types table
type ContentTypeModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null;size:100"`
	Slug      string    `gorm:"not null;size:100;uniqueIndex:uk_content_types_slug"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ContentTypeModel) TableName() string {
	return "content_types"
}

// SubjectContentModel represents the subject_contents table
type SubjectContentModel struct {
	ID            string    `gorm:"primaryKey;size:36"`
	SubjectID     string    `gorm:"not null;size:36;index:idx_subject_contents_subject"`
	ContentTypeID string    `gorm:"not null;size:36;index:idx_subject_contents_type"`
	Title         string    `gorm:"not null;size:200"`
	ResourceURL   string    `gorm:"size:500"`
	IsActive      bool      `gorm:"not null;default:true"`
	SortOrder     int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (SubjectContentModel) TableName() string {
	return "subject_contents"
}

// SubjectContentTypePricingModel represents the subject_content_type_pricing table
type SubjectContentTypePricingModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	SubjectID     string          `gorm:"not null;size:36;uniqueIndex:uk_pricing_subject_type,priority:1"`
	ContentTypeID string          `gorm:"not null;size:36;uniqueIndex:uk_pricing_subject_type,priority:2"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (SubjectContentTypePricingModel) TableName() string {
	return "subject_content_type_pricing"
}
