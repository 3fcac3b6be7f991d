package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter holds the optional listing predicates. Nil/empty fields mean
// no constraint; set fields are combined with AND.
type ProductFilter struct {
	MaxPrice       *decimal.Decimal
	ManufacturerID string
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetVisiblePaginated(ctx context.Context, now time.Time, limit, offset int) ([]models.Product, int64, error)
	GetByTypeFiltered(ctx context.Context, productTypeID string, filter ProductFilter, now time.Time, limit, offset int) ([]models.Product, int64, error)
	GetByCategoryID(ctx context.Context, categoryID string, now time.Time) ([]models.Product, error)
	SearchVisiblePaginated(ctx context.Context, keyword string, now time.Time, limit, offset int) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateAverageRating(ctx context.Context, productID string, average float64) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ProductType").
		Preload("Manufacturer").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ProductType").
		Preload("Manufacturer").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// visible narrows a query to products allowed in public listings: published
// and past their scheduled publication time.
func visible(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Where("is_published = ? AND pub_date <= ?", true, now)
}

func (p *productRepository) GetVisiblePaginated(ctx context.Context, now time.Time, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := visible(p.db.WithContext(ctx).Model(&models.Product{}), now).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := visible(p.db.WithContext(ctx), now).
		Preload("Manufacturer").
		Order("pub_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByTypeFiltered(ctx context.Context, productTypeID string, filter ProductFilter, now time.Time, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	base := func() *gorm.DB {
		q := visible(p.db.WithContext(ctx).Model(&models.Product{}), now).
			Where("product_type_id = ?", productTypeID)
		if filter.MaxPrice != nil {
			q = q.Where("price <= ?", filter.MaxPrice)
		}
		if filter.ManufacturerID != "" {
			q = q.Where("manufacturer_id = ?", filter.ManufacturerID)
		}
		return q
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base().
		Preload("Manufacturer").
		Order("pub_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByCategoryID(ctx context.Context, categoryID string, now time.Time) ([]models.Product, error) {
	var products []models.Product
	err := visible(p.db.WithContext(ctx), now).
		Where("category_id = ?", categoryID).
		Order("pub_date ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) SearchVisiblePaginated(ctx context.Context, keyword string, now time.Time, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	if err := visible(p.db.WithContext(ctx).Model(&models.Product{}), now).
		Where("LOWER(title) LIKE ?", searchKeyword).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := visible(p.db.WithContext(ctx), now).
		Where("LOWER(title) LIKE ?", searchKeyword).
		Preload("Manufacturer").
		Order("pub_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) UpdateAverageRating(ctx context.Context, productID string, average float64) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("average_rating", average).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
