package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
)

// CartView is the read model for a user's cart. Total is recomputed from
// the products' current prices on every call, never cached.
type CartView struct {
	Cart  *models.Cart
	Items []models.CartItem
	Total decimal.Decimal
	Count int
}

type CartService struct {
	cartRepo    repositories.CartRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(
	cartRepo repositories.CartRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddProduct creates the user's cart on first use, then adds the product.
// Adding an already-present product is a no-op.
func (s *CartService) AddProduct(ctx context.Context, userID, productID string) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get or create cart for user %s: %w", userID, err)
	}

	return s.cartRepo.AddItem(ctx, cart.ID, productID)
}

// RemoveProduct fails with ErrNotFound when the user has no cart or the
// product is not in it; existing contents stay untouched either way.
func (s *CartService) RemoveProduct(ctx context.Context, userID, productID string) error {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.cartRepo.RemoveItem(ctx, cart.ID, productID)
}

// View returns the cart contents and the sum of current product prices. A
// user without a cart gets an empty view.
func (s *CartService) View(ctx context.Context, userID string) (*CartView, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &CartView{Total: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	total := decimal.Zero
	for _, item := range cart.CartItems {
		if item.Product != nil {
			total = total.Add(item.Product.Price)
		}
	}

	return &CartView{
		Cart:  cart,
		Items: cart.CartItems,
		Total: total,
		Count: len(cart.CartItems),
	}, nil
}
