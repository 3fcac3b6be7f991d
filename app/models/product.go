package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title          string          `gorm:"size:255;not null"`
	Slug           string          `gorm:"size:255;not null;uniqueIndex"`
	Description    string          `gorm:"type:text"`
	Parameters     string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	PubDate        time.Time       `gorm:"not null;index"`
	CategoryID     string          `gorm:"size:36;index;not null"`
	Category       Category        `gorm:"foreignKey:CategoryID"`
	ProductTypeID  string          `gorm:"size:36;index;not null"`
	ProductType    ProductType     `gorm:"foreignKey:ProductTypeID"`
	ManufacturerID *string         `gorm:"size:36;index"`
	Manufacturer   *Manufacturer   `gorm:"foreignKey:ManufacturerID"`
	ImagePath      string          `gorm:"size:255"`
	AverageRating  float64         `gorm:"default:0"`
	Comments       []Comment       `gorm:"foreignKey:ProductID"`
	Publishable
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// Visible reports whether the product may appear in public listings.
func (p *Product) Visible(now time.Time) bool {
	return p.IsPublished && !p.PubDate.After(now)
}
