package repositories

import (
	"context"
	"errors"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type ManufacturerRepositoryImpl interface {
	Create(ctx context.Context, manufacturer *models.Manufacturer) error
	GetByID(ctx context.Context, id string) (*models.Manufacturer, error)
	GetAll(ctx context.Context) ([]models.Manufacturer, error)
	Update(ctx context.Context, manufacturer *models.Manufacturer) error
	Delete(ctx context.Context, id string) error
}

type manufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) ManufacturerRepositoryImpl {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *models.Manufacturer) error {
	return r.db.WithContext(ctx).Create(manufacturer).Error
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&manufacturers).Error
	if err != nil {
		return nil, err
	}
	return manufacturers, nil
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *models.Manufacturer) error {
	return r.db.WithContext(ctx).Save(manufacturer).Error
}

func (r *manufacturerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Manufacturer{}, "id = ?", id).Error
}
