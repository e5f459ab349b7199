package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/google/uuid"
)

const orderColumns = `id, order_number, reference, customer_id, customer_email, provider, status, currency,
	subtotal_amount, shipping_amount, tax_amount, total_amount,
	ship_name, ship_address, ship_city, ship_country, ship_postal_code, created_at, updated_at`

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return postgres.ExecTx(ctx, r.db, fn)
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	var createdOrder domain.Order

	err := r.execTX(ctx, func(tx *sql.Tx) error {
		s := order.Shipping
		row := tx.QueryRowContext(ctx, `
			INSERT INTO orders (id, order_number, reference, customer_id, customer_email, provider, status, currency,
				subtotal_amount, shipping_amount, tax_amount, total_amount,
				ship_name, ship_address, ship_city, ship_country, ship_postal_code, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
			RETURNING `+orderColumns,
			order.ID, order.Number, order.Reference, order.CustomerID, order.CustomerEmail, order.Provider,
			string(order.Status), order.Currency,
			order.SubTotalAmount, order.ShippingAmount, order.TaxAmount, order.TotalAmount,
			s.Name, s.Address, s.City, s.Country, s.PostalCode, order.CreatedAt,
		)
		o, err := scanOrder(row)
		if err != nil {
			if c, ok := postgres.ViolatedConstraint(err); ok && c == "orders_order_number_key" {
				return app.ErrDuplicateNumber
			}
			return fmt.Errorf("failed to create order: %w", err)
		}

		orderItems := make([]domain.OrderItem, 0, len(order.OrderItems))

		for i, item := range order.OrderItems {
			expected, err := money.Mul(item.UnitAmount, int64(item.Quantity))
			if err != nil || item.LineTotalAmount != expected {
				return fmt.Errorf("item %d: line total mismatch", i)
			}

			pUUID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("item %d: invalid product UUID: %w", i, err)
			}

			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, sku, name, variant_size, variant_color,
					unit_amount, quantity, line_total_amount)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				item.ID, o.ID, pUUID, item.SKU, item.Name, item.VariantSize, item.VariantColor,
				item.UnitAmount, item.Quantity, item.LineTotalAmount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}

			item.OrderID = o.ID
			orderItems = append(orderItems, item)
		}

		// The reference is the correlation id handed to the payment provider.
		_, err = tx.ExecContext(ctx, `
			INSERT INTO payment_correlations (provider, external_id, order_id)
			VALUES ($1, $2, $3)`,
			o.Provider, o.Reference, o.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to index correlation: %w", err)
		}

		o.OrderItems = orderItems
		createdOrder = o
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return createdOrder, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (domain.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number)
}

func (r *OrderRepo) getOne(ctx context.Context, query string, arg any) (domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	o.OrderItems, err = listItems(ctx, r.db, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) ListByCustomerEmail(ctx context.Context, email string, limit int) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_email = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		email, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].OrderItems, err = listItems(ctx, r.db, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *OrderRepo) CancelTx(ctx context.Context, id string, decide func(current domain.Status) (bool, error)) (domain.Order, domain.Status, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, "", app.ErrNotFound
	}

	var (
		result domain.Order
		from   domain.Status
	)
	err = r.execTX(ctx, func(tx *sql.Tx) error {
		o, err := scanOrder(tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
		if errors.Is(err, sql.ErrNoRows) {
			return app.ErrNotFound
		}
		if err != nil {
			return err
		}
		from = o.Status

		apply, err := decide(o.Status)
		if err != nil {
			return err
		}
		if apply {
			now := time.Now().UTC()
			if now.Before(o.UpdatedAt) {
				now = o.UpdatedAt
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
				orderID, string(domain.StatusCancelled), now,
			); err != nil {
				return err
			}
			o.Status = domain.StatusCancelled
			o.UpdatedAt = now
		}

		o.OrderItems, err = listItems(ctx, tx, o.ID)
		result = o
		return err
	})
	if err != nil {
		return domain.Order{}, "", err
	}
	return result, from, nil
}

func listItems(ctx context.Context, db postgres.DBTX, orderID string) ([]domain.OrderItem, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, order_id, product_id, sku, name, variant_size, variant_color, unit_amount, quantity, line_total_amount
		FROM order_items
		WHERE order_id = $1
		ORDER BY sku, id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			it                 domain.OrderItem
			id, oID, productID uuid.UUID
		)
		if err := rows.Scan(&id, &oID, &productID, &it.SKU, &it.Name, &it.VariantSize, &it.VariantColor,
			&it.UnitAmount, &it.Quantity, &it.LineTotalAmount); err != nil {
			return nil, err
		}
		it.ID = id.String()
		it.OrderID = oID.String()
		it.ProductID = productID.String()
		items = append(items, it)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (domain.Order, error) {
	var (
		o              domain.Order
		id, customerID uuid.UUID
		status         string
	)
	err := s.Scan(&id, &o.Number, &o.Reference, &customerID, &o.CustomerEmail, &o.Provider, &status, &o.Currency,
		&o.SubTotalAmount, &o.ShippingAmount, &o.TaxAmount, &o.TotalAmount,
		&o.Shipping.Name, &o.Shipping.Address, &o.Shipping.City, &o.Shipping.Country, &o.Shipping.PostalCode,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id.String()
	o.CustomerID = customerID.String()
	o.Status = domain.Status(status)
	return o, nil
}
