package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
)

type FavoriteView struct {
	Favorite *models.Favorite
	Items    []models.FavoriteItem
	Count    int
}

// FavoriteService follows the cart contract without totals or checkout.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

func (s *FavoriteService) AddProduct(ctx context.Context, userID, productID string) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	favorite, err := s.favoriteRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get or create favorites for user %s: %w", userID, err)
	}

	return s.favoriteRepo.AddItem(ctx, favorite.ID, productID)
}

func (s *FavoriteService) RemoveProduct(ctx context.Context, userID, productID string) error {
	favorite, err := s.favoriteRepo.GetWithItems(ctx, userID)
	if err != nil {
		return err
	}

	return s.favoriteRepo.RemoveItem(ctx, favorite.ID, productID)
}

func (s *FavoriteService) View(ctx context.Context, userID string) (*FavoriteView, error) {
	favorite, err := s.favoriteRepo.GetWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &FavoriteView{}, nil
		}
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}

	return &FavoriteView{
		Favorite: favorite,
		Items:    favorite.FavoriteItems,
		Count:    len(favorite.FavoriteItems),
	}, nil
}
