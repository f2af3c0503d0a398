package service

import (
	"context"
	"fmt"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"

	"github.com/redis/go-redis/v9"
)

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uint) error
	Reactivate(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:   req.Name,
		Price:  req.Price,
		Image:  req.Image,
		Active: true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if !req.Price.IsZero() {
		p.Price = req.Price
	}
	if req.Image != nil {
		p.Image = req.Image
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidatePriceCache(ctx, id)
	return productToResponse(p), nil
}

func (s *productService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidatePriceCache(ctx, id)
	return nil
}

func (s *productService) Reactivate(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

// invalidatePriceCache drops the public price-check entry after a catalog
// edit. Best effort — a miss just falls back to the DB.
func (s *productService) invalidatePriceCache(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, PriceCacheKey(id)).Err()
}

// PriceCacheKey names the Redis entry for one product's cached price.
func PriceCacheKey(id uint) string { return fmt.Sprintf("price:%d", id) }

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
