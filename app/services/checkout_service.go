package services

import (
	"context"
	"fmt"
	"log"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db        *gorm.DB
	cartRepo  repositories.CartRepositoryImpl
	orderRepo repositories.OrderHistoryRepositoryImpl
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	orderRepo repositories.OrderHistoryRepositoryImpl,
) *CheckoutService {
	return &CheckoutService{
		db:        db,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// Checkout snapshots the target user's cart into an immutable OrderHistory
// record and clears the cart. Snapshot and clear run in one transaction so
// a partial failure never loses items. The requester must own the cart.
func (s *CheckoutService) Checkout(ctx context.Context, requesterID, targetUserID string) (*models.OrderHistory, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	if cart.UserID != requesterID {
		return nil, models.ErrForbidden
	}

	if len(cart.CartItems) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", models.ErrValidation)
	}

	total := decimal.Zero
	items := make([]models.OrderHistoryItem, 0, len(cart.CartItems))
	for _, cartItem := range cart.CartItems {
		if cartItem.Product == nil {
			return nil, fmt.Errorf("cart item %s has no product loaded", cartItem.ID)
		}
		total = total.Add(cartItem.Product.Price)
		items = append(items, models.OrderHistoryItem{
			ProductID:    cartItem.ProductID,
			ProductTitle: cartItem.Product.Title,
			Price:        cartItem.Product.Price,
		})
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: Rolling back checkout transaction: %v", r)
			tx.Rollback()
		}
	}()

	order := &models.OrderHistory{
		UserID: cart.UserID,
		CartID: cart.ID,
		Total:  total,
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order history: %w", err)
	}

	for i := range items {
		items[i].OrderHistoryID = order.ID
	}
	if err := s.orderRepo.BulkCreateItems(ctx, tx, items); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order history items: %w", err)
	}

	if err := s.cartRepo.ClearItems(ctx, tx, cart.ID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	order.Items = items
	return order, nil
}

// ListHistory returns the user's order records, most recent first.
func (s *CheckoutService) ListHistory(ctx context.Context, userID string) ([]models.OrderHistory, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}
