package services

import (
	"context"
	"testing"
	"time"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutFixture(t *testing.T) (*gorm.DB, *CartService, *CheckoutService) {
	t.Helper()

	db := setupTestDB(t)
	cartRepo := repositories.NewCartRepository(db)
	cartSvc := NewCartService(cartRepo, repositories.NewProductRepository(db))
	checkoutSvc := NewCheckoutService(db, cartRepo, repositories.NewOrderHistoryRepository(db))
	return db, cartSvc, checkoutSvc
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	db, cartSvc, checkoutSvc := newCheckoutFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))
	amp := createTestProduct(t, db, "Tube Amp", decimal.NewFromInt(300))

	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, guitar.ID))
	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, amp.ID))

	order, err := checkoutSvc.Checkout(ctx, user.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(1500)), "got total %s", order.Total)
	require.Len(t, order.Items, 2)

	titles := map[string]decimal.Decimal{}
	for _, item := range order.Items {
		titles[item.ProductTitle] = item.Price
	}
	require.Contains(t, titles, "Stratocaster")
	assert.True(t, titles["Stratocaster"].Equal(decimal.NewFromInt(1200)))

	view, err := cartSvc.View(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, view.Count, "cart must be empty after checkout")
}

func TestCheckoutSnapshotSurvivesLaterPriceChange(t *testing.T) {
	db, cartSvc, checkoutSvc := newCheckoutFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, guitar.ID))

	order, err := checkoutSvc.Checkout(ctx, user.ID, user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", guitar.ID).
		Update("price", decimal.NewFromInt(99)).Error)

	var stored models.OrderHistory
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.True(t, stored.Items[0].Price.Equal(decimal.NewFromInt(1200)),
		"order item price must stay at the value captured at checkout")
}

func TestCheckoutRejectsForeignCart(t *testing.T) {
	db, cartSvc, checkoutSvc := newCheckoutFixture(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "alice")
	intruder := createTestUser(t, db, "mallory")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	require.NoError(t, cartSvc.AddProduct(ctx, owner.ID, guitar.ID))

	_, err := checkoutSvc.Checkout(ctx, intruder.ID, owner.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	view, err := cartSvc.View(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count, "rejected checkout must not touch the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	db, cartSvc, checkoutSvc := newCheckoutFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, guitar.ID))
	require.NoError(t, cartSvc.RemoveProduct(ctx, user.ID, guitar.ID))

	_, err := checkoutSvc.Checkout(ctx, user.ID, user.ID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCheckoutWithoutCart(t *testing.T) {
	db, _, checkoutSvc := newCheckoutFixture(t)

	user := createTestUser(t, db, "alice")

	_, err := checkoutSvc.Checkout(context.Background(), user.ID, user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListHistoryNewestFirst(t *testing.T) {
	db, cartSvc, checkoutSvc := newCheckoutFixture(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	guitar := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))
	amp := createTestProduct(t, db, "Tube Amp", decimal.NewFromInt(300))

	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, guitar.ID))
	first, err := checkoutSvc.Checkout(ctx, user.ID, user.ID)
	require.NoError(t, err)

	// Separate the created_at values so the ordering is deterministic.
	require.NoError(t, db.Model(&models.OrderHistory{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	require.NoError(t, cartSvc.AddProduct(ctx, user.ID, amp.ID))
	second, err := checkoutSvc.Checkout(ctx, user.ID, user.ID)
	require.NoError(t, err)

	orders, err := checkoutSvc.ListHistory(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
