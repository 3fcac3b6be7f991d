package repositories

import (
	"context"
	"errors"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type ProductTypeRepositoryImpl interface {
	Create(ctx context.Context, productType *models.ProductType) error
	GetByID(ctx context.Context, id string) (*models.ProductType, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductType, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]models.ProductType, error)
	GetAll(ctx context.Context) ([]models.ProductType, error)
	Update(ctx context.Context, productType *models.ProductType) error
	Delete(ctx context.Context, id string) error
}

type productTypeRepository struct {
	db *gorm.DB
}

func NewProductTypeRepository(db *gorm.DB) ProductTypeRepositoryImpl {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) Create(ctx context.Context, productType *models.ProductType) error {
	return r.db.WithContext(ctx).Create(productType).Error
}

func (r *productTypeRepository) GetByID(ctx context.Context, id string) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.WithContext(ctx).First(&productType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &productType, nil
}

func (r *productTypeRepository) GetBySlug(ctx context.Context, slug string) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.WithContext(ctx).Preload("Category").First(&productType, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &productType, nil
}

func (r *productTypeRepository) GetByCategoryID(ctx context.Context, categoryID string) ([]models.ProductType, error) {
	var productTypes []models.ProductType
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_published = ?", categoryID, true).
		Find(&productTypes).Error
	if err != nil {
		return nil, err
	}
	return productTypes, nil
}

func (r *productTypeRepository) GetAll(ctx context.Context) ([]models.ProductType, error) {
	var productTypes []models.ProductType
	if err := r.db.WithContext(ctx).Find(&productTypes).Error; err != nil {
		return nil, err
	}
	return productTypes, nil
}

func (r *productTypeRepository) Update(ctx context.Context, productType *models.ProductType) error {
	return r.db.WithContext(ctx).Save(productType).Error
}

func (r *productTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ProductType{}, "id = ?", id).Error
}
