package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
)

type CommentService struct {
	commentRepo repositories.CommentRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCommentService(
	commentRepo repositories.CommentRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		productRepo: productRepo,
	}
}

func (s *CommentService) Create(ctx context.Context, authorID, productID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", models.ErrValidation)
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	comment := &models.Comment{
		Text:      text,
		AuthorID:  authorID,
		ProductID: productID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Edit allows only the original author to change a comment; anyone else
// gets ErrForbidden.
func (s *CommentService) Edit(ctx context.Context, requesterID, commentID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", models.ErrValidation)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != requesterID {
		return nil, models.ErrForbidden
	}

	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, requesterID, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != requesterID {
		return models.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *CommentService) ListForProduct(ctx context.Context, productID string) ([]models.Comment, error) {
	return s.commentRepo.GetByProductID(ctx, productID)
}
