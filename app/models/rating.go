package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating holds one star value per (user, product). The composite unique
// index makes repeat submissions an upsert rather than a second row.
type Rating struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;uniqueIndex:idx_user_product"`
	User      User    `gorm:"foreignKey:UserID"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_user_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Stars     int     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

const (
	MinStars = 1
	MaxStars = 5
)
