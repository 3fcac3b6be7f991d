package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is created lazily on the first add. The unique index on UserID
// enforces one cart per user at the storage level.
type Cart struct {
	ID        string     `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string     `gorm:"size:36;not null;uniqueIndex"`
	User      User       `gorm:"foreignKey:UserID"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// CartItem is a set membership row. The (CartID, ProductID) unique index
// gives adds set semantics.
type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CartID    string   `gorm:"size:36;not null;uniqueIndex:idx_cart_product"`
	Cart      *Cart    `gorm:"foreignKey:CartID"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_cart_product"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
