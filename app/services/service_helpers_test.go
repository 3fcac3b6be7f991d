package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/models/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a separate empty in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, title string, price decimal.Decimal) *models.Product {
	t.Helper()

	category := &models.Category{
		Title: "Guitars",
		Slug:  "guitars-" + uuid.NewString()[:8],
		Publishable: models.Publishable{
			IsPublished: true,
		},
	}
	require.NoError(t, db.Create(category).Error)

	productType := &models.ProductType{
		Title:      "Electric Guitars",
		Slug:       "electric-guitars-" + uuid.NewString()[:8],
		CategoryID: category.ID,
		Publishable: models.Publishable{
			IsPublished: true,
		},
	}
	require.NoError(t, db.Create(productType).Error)

	product := &models.Product{
		Title:         title,
		Slug:          "product-" + uuid.NewString()[:8],
		Price:         price,
		PubDate:       time.Now().Add(-time.Hour),
		CategoryID:    category.ID,
		ProductTypeID: productType.ID,
		Publishable: models.Publishable{
			IsPublished: true,
		},
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
