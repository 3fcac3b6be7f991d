package services

import (
	"context"
	"testing"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddProductCreatesCartOnFirstUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	var before int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&before).Error)
	assert.Zero(t, before)

	require.NoError(t, svc.AddProduct(ctx, user.ID, product.ID))

	var after int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&after).Error)
	assert.EqualValues(t, 1, after)
}

func TestCartAddProductIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	require.NoError(t, svc.AddProduct(ctx, user.ID, product.ID))
	require.NoError(t, svc.AddProduct(ctx, user.ID, product.ID))

	view, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCartAddProductUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)

	user := createTestUser(t, db, "alice")

	err := svc.AddProduct(context.Background(), user.ID, "missing-product")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartRemoveProductNotInCartLeavesContents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	kept := createTestProduct(t, db, "Telecaster", decimal.NewFromInt(900))
	other := createTestProduct(t, db, "Jazzmaster", decimal.NewFromInt(1100))

	require.NoError(t, svc.AddProduct(ctx, user.ID, kept.ID))

	err := svc.RemoveProduct(ctx, user.ID, other.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	view, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, view.Count)
	assert.Equal(t, kept.ID, view.Items[0].ProductID)
}

func TestCartRemoveProductWithoutCart(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)

	user := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	err := svc.RemoveProduct(context.Background(), user.ID, product.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartViewTotalTracksCurrentPrices(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))
	amp := createTestProduct(t, db, "Tube Amp", decimal.NewFromInt(300))

	require.NoError(t, svc.AddProduct(ctx, user.ID, guitar.ID))
	require.NoError(t, svc.AddProduct(ctx, user.ID, amp.ID))

	view, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(1500)), "got total %s", view.Total)

	// Price changes after the add must show up on the next view.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", guitar.ID).
		Update("price", decimal.NewFromInt(1000)).Error)

	view, err = svc.View(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(1300)), "got total %s", view.Total)
}

func TestCartViewWithoutCartIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)

	user := createTestUser(t, db, "alice")

	view, err := svc.View(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, view.Count)
	assert.True(t, view.Total.IsZero())
}
