package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
)

// RatingCache holds precomputed product averages. Implementations must be
// safe to skip: every miss or error falls back to the database.
type RatingCache interface {
	GetAverage(ctx context.Context, productID string) (float64, bool)
	SetAverage(ctx context.Context, productID string, average float64)
}

const ratingCacheTTL = time.Hour

type redisRatingCache struct {
	rdb *redis.Client
}

func NewRedisRatingCache(rdb *redis.Client) RatingCache {
	return &redisRatingCache{rdb: rdb}
}

func ratingCacheKey(productID string) string {
	return "product:avg_rating:" + productID
}

func (c *redisRatingCache) GetAverage(ctx context.Context, productID string) (float64, bool) {
	val, err := c.rdb.Get(ctx, ratingCacheKey(productID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("rating cache get failed for product %s: %v", productID, err)
		}
		return 0, false
	}
	avg, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return avg, true
}

func (c *redisRatingCache) SetAverage(ctx context.Context, productID string, average float64) {
	err := c.rdb.Set(ctx, ratingCacheKey(productID), strconv.FormatFloat(average, 'f', -1, 64), ratingCacheTTL).Err()
	if err != nil {
		log.Printf("rating cache set failed for product %s: %v", productID, err)
	}
}

type RatingService struct {
	ratingRepo  repositories.RatingRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	cache       RatingCache
}

// NewRatingService accepts a nil cache; averages are then always recomputed
// from the database.
func NewRatingService(
	ratingRepo repositories.RatingRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	cache RatingCache,
) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

// Rate records the user's star value for the product (upsert, one rating
// per user per product) and recomputes the denormalized average.
func (s *RatingService) Rate(ctx context.Context, userID, productID string, stars int) (float64, error) {
	if stars < models.MinStars || stars > models.MaxStars {
		return 0, fmt.Errorf("%w: stars must be between %d and %d", models.ErrValidation, models.MinStars, models.MaxStars)
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, models.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	rating := &models.Rating{
		UserID:    userID,
		ProductID: productID,
		Stars:     stars,
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return 0, fmt.Errorf("failed to save rating: %w", err)
	}

	avg, err := s.ratingRepo.AverageForProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}

	if err := s.productRepo.UpdateAverageRating(ctx, productID, avg); err != nil {
		return 0, fmt.Errorf("failed to store average rating: %w", err)
	}

	if s.cache != nil {
		s.cache.SetAverage(ctx, productID, avg)
	}

	return avg, nil
}

// Average serves the cached value when present and recomputes otherwise.
func (s *RatingService) Average(ctx context.Context, productID string) (float64, error) {
	if s.cache != nil {
		if avg, ok := s.cache.GetAverage(ctx, productID); ok {
			return avg, nil
		}
	}

	avg, err := s.ratingRepo.AverageForProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.SetAverage(ctx, productID, avg)
	}

	return avg, nil
}
