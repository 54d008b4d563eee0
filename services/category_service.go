package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id int, input CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id int) error
}

type CategoryInput struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &models.Category{Name: name}
	if input.Order != nil {
		category.Order = *input.Order
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameConflict) {
			return nil, ErrCategoryNameConflict
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Update(ctx context.Context, id int, input CategoryInput) (*models.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryNameConflict):
			return nil, ErrCategoryNameConflict
		default:
			return nil, fmt.Errorf("failed to update category %d: %w", id, err)
		}
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int) error {
	err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryInUse):
			return ErrCategoryInUse
		default:
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
	}
	return nil
}
