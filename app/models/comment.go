package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is ordered ascending by CreatedAt when listed.
type Comment struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Text      string  `gorm:"type:text;not null"`
	AuthorID  string  `gorm:"size:36;index;not null"`
	Author    User    `gorm:"foreignKey:AuthorID"`
	ProductID string  `gorm:"size:36;index;not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Publishable
	UpdatedAt time.Time
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
