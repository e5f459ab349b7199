package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

type CreateProductInput struct {
	SKU         string
	Name        string
	Description string
	Currency    string
	Amount      int64
	Status      domain.ProductStatus
}

func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))

	if name == "" || sku == "" || currency == "" || in.Amount <= 0 {
		return domain.Product{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = domain.ProductActive
	}
	if !status.Valid() {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		SKU:         sku,
		Name:        name,
		Description: in.Description,
		Status:      status,
		Price: domain.Money{
			Currency: currency,
			Amount:   in.Amount,
		},
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) GetProductBySKU(ctx context.Context, sku string) (domain.Product, error) {
	if strings.TrimSpace(sku) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.GetBySKU(ctx, strings.TrimSpace(sku))
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.ProductStatus) (domain.Product, error) {
	if strings.TrimSpace(id) == "" || !status.Valid() {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.SetStatus(ctx, id, status)
}
