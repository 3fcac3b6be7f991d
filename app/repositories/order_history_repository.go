package repositories

import (
	"context"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type OrderHistoryRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.OrderHistory) error
	BulkCreateItems(ctx context.Context, tx *gorm.DB, items []models.OrderHistoryItem) error
	FindByUserID(ctx context.Context, userID string) ([]models.OrderHistory, error)
}

type orderHistoryRepository struct {
	db *gorm.DB
}

func NewOrderHistoryRepository(db *gorm.DB) OrderHistoryRepositoryImpl {
	return &orderHistoryRepository{db: db}
}

func (r *orderHistoryRepository) Create(ctx context.Context, tx *gorm.DB, order *models.OrderHistory) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderHistoryRepository) BulkCreateItems(ctx context.Context, tx *gorm.DB, items []models.OrderHistoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderHistoryRepository) FindByUserID(ctx context.Context, userID string) ([]models.OrderHistory, error) {
	var orders []models.OrderHistory
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
