package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite mirrors Cart: one collection per user, set of products, no
// checkout. One-collection-many-products is the semantics kept from the
// revisions that disagreed on cardinality.
type Favorite struct {
	ID            string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID        string         `gorm:"size:36;not null;uniqueIndex"`
	User          User           `gorm:"foreignKey:UserID"`
	FavoriteItems []FavoriteItem `gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

type FavoriteItem struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FavoriteID string    `gorm:"size:36;not null;uniqueIndex:idx_favorite_product"`
	Favorite   *Favorite `gorm:"foreignKey:FavoriteID"`
	ProductID  string    `gorm:"size:36;not null;uniqueIndex:idx_favorite_product"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time
}

func (fi *FavoriteItem) BeforeCreate(tx *gorm.DB) (err error) {
	if fi.ID == "" {
		fi.ID = uuid.New().String()
	}
	return
}
