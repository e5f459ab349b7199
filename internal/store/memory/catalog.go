package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	err := r.s.write(ctx, func(st *state) error {
		for _, existing := range st.products {
			if existing.SKU == p.SKU {
				return app.ErrInvalidInput
			}
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		now := r.s.now()
		p.CreatedAt, p.UpdatedAt = now, now
		st.products[p.ID] = p
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := r.s.read(ctx, func(st *state) error {
		var ok bool
		if p, ok = st.products[id]; !ok {
			return app.ErrNotFound
		}
		return nil
	})
	return p, err
}

func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (domain.Product, error) {
	var p domain.Product
	err := r.s.read(ctx, func(st *state) error {
		for _, existing := range st.products {
			if existing.SKU == sku {
				p = existing
				return nil
			}
		}
		return app.ErrNotFound
	})
	return p, err
}

func (r *ProductRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	cursor = strings.TrimSpace(cursor)
	if cursor != "" {
		if _, err := uuid.Parse(cursor); err != nil {
			return nil, "", app.ErrInvalidInput
		}
	}

	var out []domain.Product
	err := r.s.read(ctx, func(st *state) error {
		for _, p := range st.products {
			if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
				continue
			}
			if cursor != "" && p.ID <= cursor {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	next := ""
	if len(out) == limit && limit > 0 {
		next = out[len(out)-1].ID
	}
	return out, next, nil
}

func (r *ProductRepo) SetStatus(ctx context.Context, id string, status domain.ProductStatus) (domain.Product, error) {
	var p domain.Product
	err := r.s.write(ctx, func(st *state) error {
		var ok bool
		if p, ok = st.products[id]; !ok {
			return app.ErrNotFound
		}
		p.Status = status
		p.UpdatedAt = r.s.now()
		st.products[id] = p
		return nil
	})
	return p, err
}
