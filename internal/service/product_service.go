package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"food_order/internal/model"
	"food_order/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductCache stores the full catalog listing
type ProductCache interface {
	GetProducts(ctx context.Context) ([]model.Product, bool, error)
	SetProducts(ctx context.Context, products []model.Product) error
}

// ProductService defines read operations on the catalog
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache ProductCache
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(repo repository.ProductRepository, cache ProductCache) ProductService {
	return &productService{repo: repo, cache: cache}
}

// ListProducts returns the catalog ordered by id, from the cache when possible.
// Cache errors are logged and never fail the request.
func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.GetProducts(ctx)
		if err != nil {
			slog.WarnContext(ctx, "product cache read failed", "error", err)
		} else if ok {
			return products, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products from repo: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			slog.WarnContext(ctx, "product cache write failed", "error", err)
		}
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
