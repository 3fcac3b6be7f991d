package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID           string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title        string        `gorm:"size:100;not null"`
	Slug         string        `gorm:"size:100;not null;uniqueIndex"`
	ImagePath    string        `gorm:"size:255"`
	ProductTypes []ProductType `gorm:"foreignKey:CategoryID"`
	Products     []Product     `gorm:"foreignKey:CategoryID"`
	Publishable
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
