package migrations

import (
	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Manufacturer{},
		&models.Category{},
		&models.ProductType{},
		&models.Product{},
		&models.Comment{},
		&models.Rating{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.FavoriteItem{},
		&models.OrderHistory{},
		&models.OrderHistoryItem{},
	)
}
