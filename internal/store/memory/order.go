package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/google/uuid"
)

type OrderRepo struct {
	s *Store
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	err := r.s.write(ctx, func(st *state) error {
		for _, o := range st.orders {
			if o.Number == order.Number {
				return app.ErrDuplicateNumber
			}
			if o.Reference == order.Reference || o.ID == order.ID {
				return fmt.Errorf("order %s already exists", order.ID)
			}
		}
		if !order.TotalsConsistent() {
			return fmt.Errorf("order totals do not add up")
		}

		items := order.OrderItems
		order.OrderItems = nil
		st.orders[order.ID] = order
		if err := r.s.fault(FaultAfterOrderInsert); err != nil {
			return err
		}

		stored := make([]domain.OrderItem, 0, len(items))
		for i, item := range items {
			if item.LineTotalAmount != item.UnitAmount*int64(item.Quantity) {
				return fmt.Errorf("item %d: line total mismatch", i)
			}
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			item.OrderID = order.ID
			stored = append(stored, item)
		}
		order.OrderItems = stored
		st.orders[order.ID] = order
		if err := r.s.fault(FaultAfterItemsInsert); err != nil {
			return err
		}

		k := key{order.Provider, order.Reference}
		if _, taken := st.correlations[k]; taken {
			return fmt.Errorf("correlation %s/%s already indexed", order.Provider, order.Reference)
		}
		st.correlations[k] = order.ID
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	err := r.s.read(ctx, func(st *state) error {
		found, ok := st.orders[id]
		if !ok {
			return app.ErrNotFound
		}
		o = copyOrder(found)
		return nil
	})
	return o, err
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	var o domain.Order
	err := r.s.read(ctx, func(st *state) error {
		for _, found := range st.orders {
			if found.Number == number {
				o = copyOrder(found)
				return nil
			}
		}
		return app.ErrNotFound
	})
	return o, err
}

func (r *OrderRepo) ListByCustomerEmail(ctx context.Context, email string, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.s.read(ctx, func(st *state) error {
		for _, o := range st.orders {
			if o.CustomerEmail == email {
				out = append(out, copyOrder(o))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *OrderRepo) CancelTx(ctx context.Context, id string, decide func(current domain.Status) (bool, error)) (domain.Order, domain.Status, error) {
	var (
		result domain.Order
		from   domain.Status
	)
	err := r.s.write(ctx, func(st *state) error {
		o, ok := st.orders[id]
		if !ok {
			return app.ErrNotFound
		}
		from = o.Status

		apply, err := decide(o.Status)
		if err != nil {
			return err
		}
		if apply {
			now := r.s.now()
			if now.Before(o.UpdatedAt) {
				now = o.UpdatedAt
			}
			o.Status = domain.StatusCancelled
			o.UpdatedAt = now
			st.orders[id] = o
		}
		result = copyOrder(o)
		return nil
	})
	if err != nil {
		return domain.Order{}, "", err
	}
	return result, from, nil
}

func copyOrder(o domain.Order) domain.Order {
	o.OrderItems = append([]domain.OrderItem(nil), o.OrderItems...)
	return o
}
