package adapter

import (
	"context"
	"errors"
	"fmt"

	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	customerdomain "github.com/dwikikusuma/storefront/internal/customer/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
)

type CustomerServiceResolver struct {
	svc *customerapp.Service
}

func NewCustomerServiceResolver(svc *customerapp.Service) *CustomerServiceResolver {
	return &CustomerServiceResolver{svc: svc}
}

func (r *CustomerServiceResolver) Resolve(ctx context.Context, email string) (orderapp.Customer, error) {
	c, err := r.svc.Resolve(ctx, email)
	if errors.Is(err, customerapp.ErrInvalidEmail) {
		return orderapp.Customer{}, fmt.Errorf("%w: %v", orderapp.ErrInvalidInput, err)
	}
	if err != nil {
		return orderapp.Customer{}, err
	}
	return orderapp.Customer{ID: c.ID, Email: c.Email}, nil
}

func (r *CustomerServiceResolver) MergeProfile(ctx context.Context, email string, p orderapp.CustomerProfile) error {
	_, err := r.svc.MergeProfile(ctx, email, customerdomain.Profile{
		Name:       p.Name,
		Phone:      p.Phone,
		Address:    p.Address,
		City:       p.City,
		Country:    p.Country,
		PostalCode: p.PostalCode,
	})
	return err
}
