package memory

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/customer/app"
	"github.com/dwikikusuma/storefront/internal/customer/domain"
	"github.com/google/uuid"
)

type CustomerRepo struct {
	s *Store
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	var c domain.Customer
	err := r.s.read(ctx, func(st *state) error {
		for _, existing := range st.customers {
			if existing.Email == email {
				c = existing
				return nil
			}
		}
		return app.ErrNotFound
	})
	return c, err
}

func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	err := r.s.write(ctx, func(st *state) error {
		for _, existing := range st.customers {
			if existing.Email == c.Email {
				return app.ErrAlreadyExists
			}
		}
		c.ID = uuid.NewString()
		now := r.s.now()
		c.CreatedAt, c.UpdatedAt = now, now
		st.customers[c.ID] = c
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepo) UpdateProfile(ctx context.Context, id string, p domain.Profile) (domain.Customer, error) {
	var c domain.Customer
	err := r.s.write(ctx, func(st *state) error {
		var ok bool
		if c, ok = st.customers[id]; !ok {
			return app.ErrNotFound
		}
		c.Profile = p
		c.UpdatedAt = r.s.now()
		st.customers[id] = c
		return nil
	})
	return c, err
}
