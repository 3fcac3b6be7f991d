package services

import (
	"context"
	"testing"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(t *testing.T) (*gorm.DB, *CommentService) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewCommentService(
		repositories.NewCommentRepository(db),
		repositories.NewProductRepository(db),
	)
	return db, svc
}

func TestCommentCreate(t *testing.T) {
	db, svc := newCommentService(t)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	comment, err := svc.Create(ctx, author.ID, product.ID, "Plays beautifully.")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, author.ID, comment.AuthorID)
}

func TestCommentCreateRejectsBlankText(t *testing.T) {
	db, svc := newCommentService(t)

	author := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	_, err := svc.Create(context.Background(), author.ID, product.ID, "   ")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCommentCreateUnknownProduct(t *testing.T) {
	db, svc := newCommentService(t)

	author := createTestUser(t, db, "alice")

	_, err := svc.Create(context.Background(), author.ID, "missing-product", "Nice.")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCommentEditByAuthor(t *testing.T) {
	db, svc := newCommentService(t)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	comment, err := svc.Create(ctx, author.ID, product.ID, "Original text")
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, author.ID, comment.ID, "Edited text")
	require.NoError(t, err)
	assert.Equal(t, "Edited text", edited.Text)
}

func TestCommentEditByOtherUserForbidden(t *testing.T) {
	db, svc := newCommentService(t)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "mallory")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	comment, err := svc.Create(ctx, author.ID, product.ID, "Original text")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, other.ID, comment.ID, "Hijacked")
	assert.ErrorIs(t, err, models.ErrForbidden)

	var stored models.Comment
	require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
	assert.Equal(t, "Original text", stored.Text)
}

func TestCommentDeleteByOtherUserForbidden(t *testing.T) {
	db, svc := newCommentService(t)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "mallory")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	comment, err := svc.Create(ctx, author.ID, product.ID, "Keep me")
	require.NoError(t, err)

	err = svc.Delete(ctx, other.ID, comment.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCommentDeleteByAuthor(t *testing.T) {
	db, svc := newCommentService(t)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	product := createTestProduct(t, db, "Stratocaster", decimal.NewFromInt(1200))

	comment, err := svc.Create(ctx, author.ID, product.ID, "Delete me")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, author.ID, comment.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.Zero(t, count)
}
