package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/storefront/internal/customer/app"
	"github.com/dwikikusuma/storefront/internal/customer/domain"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/google/uuid"
)

const customerColumns = `id, email, name, phone, address, city, country, postal_code, created_at, updated_at`

type CustomerRepo struct {
	db postgres.DBTX
}

func NewCustomerRepo(db postgres.DBTX) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, app.ErrNotFound
	}
	return c, err
}

func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	p := c.Profile
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (email, name, phone, address, city, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+customerColumns,
		c.Email, p.Name, p.Phone, p.Address, p.City, p.Country, p.PostalCode,
	)
	created, err := scanCustomer(row)
	if postgres.IsUniqueViolation(err) {
		return domain.Customer{}, app.ErrAlreadyExists
	}
	return created, err
}

func (r *CustomerRepo) UpdateProfile(ctx context.Context, id string, p domain.Profile) (domain.Customer, error) {
	custID, err := uuid.Parse(id)
	if err != nil {
		return domain.Customer{}, app.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, city = $5, country = $6, postal_code = $7, updated_at = now()
		WHERE id = $1
		RETURNING `+customerColumns,
		custID, p.Name, p.Phone, p.Address, p.City, p.Country, p.PostalCode,
	)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, app.ErrNotFound
	}
	return c, err
}

func scanCustomer(row *sql.Row) (domain.Customer, error) {
	var (
		c  domain.Customer
		id uuid.UUID
	)
	err := row.Scan(&id, &c.Email, &c.Profile.Name, &c.Profile.Phone, &c.Profile.Address,
		&c.Profile.City, &c.Profile.Country, &c.Profile.PostalCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID = id.String()
	return c, nil
}
