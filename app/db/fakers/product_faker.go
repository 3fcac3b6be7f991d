package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func CategoryFaker(db *gorm.DB, title string) *models.Category {
	return &models.Category{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      slug.Make(title),
		Publishable: models.Publishable{
			IsPublished: true,
			CreatedAt:   time.Now(),
		},
		UpdatedAt: time.Now(),
	}
}

func ProductTypeFaker(db *gorm.DB, category *models.Category, title string) *models.ProductType {
	return &models.ProductType{
		ID:         uuid.New().String(),
		Title:      title,
		Slug:       slug.Make(title),
		CategoryID: category.ID,
		Publishable: models.Publishable{
			IsPublished: true,
			CreatedAt:   time.Now(),
		},
		UpdatedAt: time.Now(),
	}
}

func ManufacturerFaker(db *gorm.DB, name string) *models.Manufacturer {
	return &models.Manufacturer{
		ID:   uuid.New().String(),
		Name: name,
		Publishable: models.Publishable{
			IsPublished: true,
			CreatedAt:   time.Now(),
		},
		UpdatedAt: time.Now(),
	}
}

func ProductFaker(db *gorm.DB, productType *models.ProductType, manufacturer *models.Manufacturer) *models.Product {
	title := faker.Word() + " " + faker.Word()

	product := &models.Product{
		ID:            uuid.New().String(),
		Title:         title,
		Slug:          slug.Make(title + "-" + uuid.NewString()[:6]),
		Description:   faker.Paragraph(),
		Parameters:    faker.Sentence(),
		Price:         fakePrice(),
		PubDate:       time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour),
		CategoryID:    productType.CategoryID,
		ProductTypeID: productType.ID,
		Publishable: models.Publishable{
			IsPublished: true,
			CreatedAt:   time.Now(),
		},
		UpdatedAt: time.Now(),
	}
	if manufacturer != nil {
		product.ManufacturerID = &manufacturer.ID
	}
	return product
}

func fakePrice() decimal.Decimal {
	cents := int64(rand.Intn(490000) + 1000)
	return decimal.New(cents, -2)
}
