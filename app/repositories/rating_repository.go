package repositories

import (
	"context"
	"errors"

	"github.com/rennabyte/strumhaus/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepositoryImpl interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Rating, error)
	AverageForProduct(ctx context.Context, productID string) (float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepositoryImpl {
	return &ratingRepository{db}
}

// Upsert keeps one rating per (user, product): a second submission updates
// the stars in place via the composite unique index.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "updated_at"}),
		}).
		Create(rating).Error
}

func (r *ratingRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) AverageForProduct(ctx context.Context, productID string) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(stars), 0)").
		Scan(&avg).Error
	return avg, err
}
