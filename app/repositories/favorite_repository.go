package repositories

import (
	"context"
	"errors"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type FavoriteRepositoryImpl interface {
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Favorite, error)
	GetWithItems(ctx context.Context, userID string) (*models.Favorite, error)
	AddItem(ctx context.Context, favoriteID, productID string) error
	RemoveItem(ctx context.Context, favoriteID, productID string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepositoryImpl {
	return &favoriteRepository{db}
}

func (r *favoriteRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where(models.Favorite{UserID: userID}).
		FirstOrCreate(&favorite).Error
	if err != nil {
		if fetchErr := r.db.WithContext(ctx).First(&favorite, "user_id = ?", userID).Error; fetchErr == nil {
			return &favorite, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetWithItems(ctx context.Context, userID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Preload("FavoriteItems.Product").
		Preload("FavoriteItems").
		First(&favorite, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) AddItem(ctx context.Context, favoriteID, productID string) error {
	var item models.FavoriteItem
	return r.db.WithContext(ctx).
		Where(models.FavoriteItem{FavoriteID: favoriteID, ProductID: productID}).
		FirstOrCreate(&item).Error
}

func (r *favoriteRepository) RemoveItem(ctx context.Context, favoriteID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("favorite_id = ? AND product_id = ?", favoriteID, productID).
		Delete(&models.FavoriteItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
