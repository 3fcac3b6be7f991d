package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Manufacturer struct {
	ID       string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name     string    `gorm:"size:128;not null;uniqueIndex"`
	Products []Product `gorm:"foreignKey:ManufacturerID"`
	Publishable
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *Manufacturer) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
