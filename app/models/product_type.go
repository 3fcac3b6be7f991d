package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductType struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title      string    `gorm:"size:100;not null"`
	Slug       string    `gorm:"size:100;not null;uniqueIndex"`
	CategoryID string    `gorm:"size:36;index;not null"`
	Category   Category  `gorm:"foreignKey:CategoryID"`
	Products   []Product `gorm:"foreignKey:ProductTypeID"`
	Publishable
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (pt *ProductType) BeforeCreate(tx *gorm.DB) (err error) {
	if pt.ID == "" {
		pt.ID = uuid.New().String()
	}
	return
}
