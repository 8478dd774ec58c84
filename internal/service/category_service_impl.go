package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/repository"
)

// ErrEmptyCategoryName rejects blank legend entries.
var ErrEmptyCategoryName = errors.New("category name must not be empty")

type categoryService struct {
	categories repository.CategoryRepo
}

// NewCategoryService wires a CategoryService over the given repository.
func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return s.categories.Create(ctx, c)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return s.categories.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
