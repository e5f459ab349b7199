package app

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrNotFound      = errors.New("customer not found")
	ErrAlreadyExists = errors.New("customer already exists")
	ErrStore         = errors.New("customer store unavailable")
)

type Service struct {
	repo CustomerRepo
}

func NewService(repo CustomerRepo) *Service {
	return &Service{repo: repo}
}

// ResolveOrCreate returns the customer registered under email, creating it when absent.
// Non-empty profile fields overwrite the stored ones; empty fields leave them untouched.
func (s *Service) ResolveOrCreate(ctx context.Context, email string, profile domain.Profile) (domain.Customer, error) {
	c, created, err := s.resolve(ctx, email, profile)
	if err != nil || created {
		return c, err
	}
	return s.merge(ctx, c, profile)
}

// Resolve returns the customer registered under email, creating a record with
// an empty profile when absent. Existing profiles are left untouched.
func (s *Service) Resolve(ctx context.Context, email string) (domain.Customer, error) {
	c, _, err := s.resolve(ctx, email, domain.Profile{})
	return c, err
}

// MergeProfile applies profile to the customer registered under email with the
// same last-write-wins rule as ResolveOrCreate.
func (s *Service) MergeProfile(ctx context.Context, email string, profile domain.Profile) (domain.Customer, error) {
	email, err := validateEmail(email)
	if err != nil {
		return domain.Customer{}, err
	}
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Customer{}, err
		}
		return domain.Customer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return s.merge(ctx, c, profile)
}

// resolve finds or creates the customer. created is true when this call
// inserted the record with initial as its profile.
func (s *Service) resolve(ctx context.Context, email string, initial domain.Profile) (c domain.Customer, created bool, err error) {
	email, err = validateEmail(email)
	if err != nil {
		return domain.Customer{}, false, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.Customer{}, false, fmt.Errorf("%w: %v", ErrStore, err)
	}

	c, err = s.repo.Create(ctx, domain.Customer{
		Email:   email,
		Profile: domain.Profile{}.Merge(initial),
	})
	if err == nil {
		return c, true, nil
	}

	// Someone else created it concurrently => re-get.
	if errors.Is(err, ErrAlreadyExists) {
		existing, err = s.repo.GetByEmail(ctx, email)
		if err != nil {
			return domain.Customer{}, false, fmt.Errorf("%w: %v", ErrStore, err)
		}
		return existing, false, nil
	}
	return domain.Customer{}, false, fmt.Errorf("%w: %v", ErrStore, err)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	email, err := validateEmail(email)
	if err != nil {
		return domain.Customer{}, err
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) merge(ctx context.Context, c domain.Customer, profile domain.Profile) (domain.Customer, error) {
	merged := c.Profile.Merge(profile)
	if merged == c.Profile {
		return c, nil
	}
	updated, err := s.repo.UpdateProfile(ctx, c.ID, merged)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return updated, nil
}

func validateEmail(email string) (string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
