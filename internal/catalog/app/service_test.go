package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	created domain.Product
}

func (f *fakeRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	f.created = p
	return p, nil
}
func (*fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	return domain.Product{}, nil
}
func (*fakeRepo) GetBySKU(ctx context.Context, sku string) (domain.Product, error) {
	return domain.Product{}, nil
}
func (*fakeRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	return nil, "", nil
}
func (*fakeRepo) SetStatus(ctx context.Context, id string, status domain.ProductStatus) (domain.Product, error) {
	return domain.Product{ID: id, Status: status}, nil
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{SKU: "KB-1", Name: "   ", Currency: "MXN", Amount: 100})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty sku -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{Name: "Keyboard", Currency: "MXN", Amount: 100})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative amount -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{SKU: "KB-1", Name: "Keyboard", Currency: "MXN", Amount: -1})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty currency -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{SKU: "KB-1", Name: "Keyboard", Currency: "   ", Amount: 100})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown status -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{SKU: "KB-1", Name: "Keyboard", Currency: "MXN", Amount: 100, Status: "sold"})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestCreateProductDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{SKU: " KB-1 ", Name: "Keyboard", Currency: "mxn", Amount: 1500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created.Status != domain.ProductActive {
		t.Fatalf("expected default status active, got %q", repo.created.Status)
	}
	if repo.created.Price.Currency != "MXN" || repo.created.SKU != "KB-1" {
		t.Fatalf("expected normalized sku/currency, got %+v", repo.created)
	}
}
