package repositories

import (
	"context"
	"errors"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetWithItems(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, cartID, productID string) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	ClearItems(ctx context.Context, tx *gorm.DB, cartID string) error
	ItemCount(ctx context.Context, cartID string) (int, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

// GetOrCreateByUserID relies on the unique index on carts.user_id: a racing
// duplicate insert fails and the existing row is fetched instead.
func (r *cartRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		if fetchErr := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error; fetchErr == nil {
			return &cart, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetWithItems(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems.Product").
		Preload("CartItems").
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem is idempotent: the (cart_id, product_id) unique pair turns a
// repeat add into a no-op.
func (r *cartRepository) AddItem(ctx context.Context, cartID, productID string) error {
	var item models.CartItem
	return r.db.WithContext(ctx).
		Where(models.CartItem{CartID: cartID, ProductID: productID}).
		FirstOrCreate(&item).Error
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *cartRepository) ClearItems(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *cartRepository) ItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error
	return int(count), err
}
