package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
)

// CustomerRepo persists customers keyed by normalized email.
// Create returns ErrAlreadyExists when the email is taken.
type CustomerRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	UpdateProfile(ctx context.Context, id string, p domain.Profile) (domain.Customer, error)
}
