package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderHistory is an immutable snapshot of a cart taken at checkout. Items
// copy title and price so later catalog edits never rewrite history.
type OrderHistory struct {
	ID        string             `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string             `gorm:"size:36;not null;index"`
	User      User               `gorm:"foreignKey:UserID"`
	CartID    string             `gorm:"size:36;not null;index"`
	Cart      Cart               `gorm:"foreignKey:CartID"`
	Items     []OrderHistoryItem `gorm:"foreignKey:OrderHistoryID"`
	Total     decimal.Decimal    `gorm:"type:decimal(16,2);not null"`
	CreatedAt time.Time          `gorm:"index"`
}

func (o *OrderHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

type OrderHistoryItem struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderHistoryID string          `gorm:"size:36;not null;index"`
	ProductID      string          `gorm:"size:36;not null;index"`
	Product        *Product        `gorm:"foreignKey:ProductID"`
	ProductTitle   string          `gorm:"size:255;not null"`
	Price          decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt      time.Time
}

func (oi *OrderHistoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
