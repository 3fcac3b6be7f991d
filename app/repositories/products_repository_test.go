package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/models/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

type catalogFixture struct {
	db           *gorm.DB
	category     *models.Category
	productType  *models.ProductType
	manufacturer *models.Manufacturer
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	db := setupTestDB(t)

	category := &models.Category{
		Title:       "Guitars",
		Slug:        "guitars",
		Publishable: models.Publishable{IsPublished: true},
	}
	require.NoError(t, db.Create(category).Error)

	productType := &models.ProductType{
		Title:       "Electric Guitars",
		Slug:        "electric-guitars",
		CategoryID:  category.ID,
		Publishable: models.Publishable{IsPublished: true},
	}
	require.NoError(t, db.Create(productType).Error)

	manufacturer := &models.Manufacturer{
		Name:        "Fender",
		Publishable: models.Publishable{IsPublished: true},
	}
	require.NoError(t, db.Create(manufacturer).Error)

	return &catalogFixture{
		db:           db,
		category:     category,
		productType:  productType,
		manufacturer: manufacturer,
	}
}

type productSpec struct {
	title          string
	price          int64
	pubDate        time.Time
	published      bool
	manufacturerID *string
}

func (f *catalogFixture) addProduct(t *testing.T, spec productSpec) *models.Product {
	t.Helper()

	product := &models.Product{
		Title:          spec.title,
		Slug:           "product-" + uuid.NewString()[:8],
		Price:          decimal.NewFromInt(spec.price),
		PubDate:        spec.pubDate,
		CategoryID:     f.category.ID,
		ProductTypeID:  f.productType.ID,
		ManufacturerID: spec.manufacturerID,
		Publishable:    models.Publishable{IsPublished: spec.published},
	}
	require.NoError(t, f.db.Create(product).Error)
	return product
}

func TestGetVisiblePaginatedHidesUnpublishedAndFuture(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	visible := f.addProduct(t, productSpec{title: "Visible", price: 100, pubDate: now.Add(-time.Hour), published: true})
	f.addProduct(t, productSpec{title: "Draft", price: 100, pubDate: now.Add(-time.Hour), published: false})
	f.addProduct(t, productSpec{title: "Scheduled", price: 100, pubDate: now.Add(time.Hour), published: true})

	products, total, err := repo.GetVisiblePaginated(context.Background(), now, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, visible.ID, products[0].ID)
}

func TestGetVisiblePaginatedOrdersByPubDate(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	newer := f.addProduct(t, productSpec{title: "Newer", price: 100, pubDate: now.Add(-time.Hour), published: true})
	older := f.addProduct(t, productSpec{title: "Older", price: 100, pubDate: now.Add(-48 * time.Hour), published: true})

	products, _, err := repo.GetVisiblePaginated(context.Background(), now, 10, 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, older.ID, products[0].ID)
	assert.Equal(t, newer.ID, products[1].ID)
}

func TestGetVisiblePaginatedPaging(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	for i := 0; i < 5; i++ {
		f.addProduct(t, productSpec{
			title:     "Product",
			price:     100,
			pubDate:   now.Add(-time.Duration(i+1) * time.Hour),
			published: true,
		})
	}

	products, total, err := repo.GetVisiblePaginated(context.Background(), now, 2, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, products, 1, "last page holds the remainder")
}

func TestGetByTypeFilteredMaxPriceIsInclusive(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	cheap := f.addProduct(t, productSpec{title: "Cheap", price: 500, pubDate: now.Add(-time.Hour), published: true})
	exact := f.addProduct(t, productSpec{title: "Exact", price: 1000, pubDate: now.Add(-time.Hour), published: true})
	f.addProduct(t, productSpec{title: "Expensive", price: 1500, pubDate: now.Add(-time.Hour), published: true})

	maxPrice := decimal.NewFromInt(1000)
	products, total, err := repo.GetByTypeFiltered(context.Background(), f.productType.ID,
		ProductFilter{MaxPrice: &maxPrice}, now, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	ids := map[string]bool{}
	for _, p := range products {
		ids[p.ID] = true
	}
	assert.True(t, ids[cheap.ID])
	assert.True(t, ids[exact.ID], "a product priced at the limit is included")
}

func TestGetByTypeFilteredCombinesPredicates(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	match := f.addProduct(t, productSpec{
		title: "Match", price: 800, pubDate: now.Add(-time.Hour),
		published: true, manufacturerID: &f.manufacturer.ID,
	})
	f.addProduct(t, productSpec{
		title: "Wrong maker", price: 800, pubDate: now.Add(-time.Hour), published: true,
	})
	f.addProduct(t, productSpec{
		title: "Too expensive", price: 2000, pubDate: now.Add(-time.Hour),
		published: true, manufacturerID: &f.manufacturer.ID,
	})

	maxPrice := decimal.NewFromInt(1000)
	products, total, err := repo.GetByTypeFiltered(context.Background(), f.productType.ID,
		ProductFilter{MaxPrice: &maxPrice, ManufacturerID: f.manufacturer.ID}, now, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, match.ID, products[0].ID)
}

func TestSearchVisiblePaginatedIsCaseInsensitive(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	strat := f.addProduct(t, productSpec{title: "Fender Stratocaster", price: 1200, pubDate: now.Add(-time.Hour), published: true})
	f.addProduct(t, productSpec{title: "Gibson Les Paul", price: 2000, pubDate: now.Add(-time.Hour), published: true})

	products, total, err := repo.SearchVisiblePaginated(context.Background(), "STRATO", now, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, strat.ID, products[0].ID)
}

func TestSearchVisiblePaginatedSkipsHiddenProducts(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)
	now := time.Now()

	f.addProduct(t, productSpec{title: "Hidden Stratocaster", price: 1200, pubDate: now.Add(-time.Hour), published: false})

	_, total, err := repo.SearchVisiblePaginated(context.Background(), "strato", now, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetByIDNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	repo := NewProductRepository(f.db)

	_, err := repo.GetByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
