package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/pkg/events"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrCustomerResolution = errors.New("customer resolution failed")
	ErrPersistence        = errors.New("order persistence failed")
	ErrNotFound           = errors.New("order not found")
	ErrDuplicateNumber    = errors.New("order number already taken")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

const (
	numberAttempts  = 5
	referencePrefix = "ord_"
	numberPrefix    = "SF-"

	// MaxAmount caps caller-supplied shipping and tax, in minor units.
	MaxAmount int64 = 100_000_000_000
)

type Service struct {
	repo      OrderRepo
	customers CustomerResolver
	pricer    Pricer
	publisher events.Publisher
	metrics   *metrics.Registry
	log       *slog.Logger

	newNumber func() string
	now       func() time.Time
}

type Option func(*Service)

func WithNumberGenerator(fn func() string) Option {
	return func(s *Service) { s.newNumber = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithMetrics(m *metrics.Registry) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(repo OrderRepo, customers CustomerResolver, pricer Pricer, publisher events.Publisher, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		customers: customers,
		pricer:    pricer,
		publisher: publisher,
		log:       log,
		newNumber: NewOrderNumber,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := validateCreate(req); err != nil {
		s.metrics.OrderCreateFailed("validation")
		return domain.Order{}, err
	}

	priced, err := s.pricer.Price(ctx, req.Items)
	if err != nil {
		s.metrics.OrderCreateFailed("pricing")
		return domain.Order{}, err
	}
	total, err := money.Sum(priced.Subtotal, req.ShippingAmount, req.TaxAmount)
	if err != nil {
		s.metrics.OrderCreateFailed("validation")
		return domain.Order{}, fmt.Errorf("%w: order total: %v", ErrInvalidInput, err)
	}

	customer, err := s.customers.Resolve(ctx, req.CustomerEmail)
	if err != nil {
		s.metrics.OrderCreateFailed("customer")
		if errors.Is(err, ErrInvalidInput) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("%w: %v", ErrCustomerResolution, err)
	}

	now := s.now()
	order := domain.Order{
		ID:             uuid.NewString(),
		Reference:      referencePrefix + strings.ToLower(ulid.Make().String()),
		CustomerID:     customer.ID,
		CustomerEmail:  customer.Email,
		Provider:       req.Provider,
		Status:         domain.StatusPending,
		Currency:       priced.Currency,
		SubTotalAmount: priced.Subtotal,
		ShippingAmount: req.ShippingAmount,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    total,
		Shipping:       req.Shipping,
		OrderItems:     priced.Lines,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !order.TotalsConsistent() {
		return domain.Order{}, fmt.Errorf("%w: totals do not add up", ErrInvalidInput)
	}

	var created domain.Order
	for attempt := 1; ; attempt++ {
		order.Number = s.newNumber()
		created, err = s.repo.CreateOrderTx(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, ErrDuplicateNumber) && attempt < numberAttempts {
			s.log.WarnContext(ctx, "order number collision, retrying", slog.String("number", order.Number), slog.Int("attempt", attempt))
			continue
		}
		s.metrics.OrderCreateFailed("persistence")
		return domain.Order{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.metrics.OrderCreated()
	profile := CustomerProfile{
		Name:       firstNonEmpty(req.Customer.Name, req.Shipping.Name),
		Phone:      req.Customer.Phone,
		Address:    req.Shipping.Address,
		City:       req.Shipping.City,
		Country:    req.Shipping.Country,
		PostalCode: req.Shipping.PostalCode,
	}
	if err := s.customers.MergeProfile(ctx, customer.Email, profile); err != nil {
		s.log.WarnContext(ctx, "customer profile merge failed after order commit",
			slog.String("order_id", created.ID), slog.String("customer_id", customer.ID), slog.Any("err", err))
	}
	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID),
		slog.String("number", created.Number),
		slog.String("provider", created.Provider),
		slog.Int64("total", created.TotalAmount),
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeOrderCreated,
		Key:        created.ID,
		OccurredAt: created.CreatedAt,
		Payload:    toResponse(created),
	})

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetOrderByNumber(ctx context.Context, number string) (domain.Order, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) ListCustomerOrders(ctx context.Context, email string, limit int) ([]domain.Order, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByCustomerEmail(ctx, email, limit)
}

// CancelOrder is the administrative override. Unlike payment reconciliation it may
// cancel a paid order. Cancelling an already cancelled order is a no-op.
func (s *Service) CancelOrder(ctx context.Context, id, reason string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}

	order, from, err := s.repo.CancelTx(ctx, id, func(current domain.Status) (bool, error) {
		switch current {
		case domain.StatusPending, domain.StatusPaid:
			return true, nil
		case domain.StatusCancelled:
			return false, nil
		default:
			return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, domain.StatusCancelled)
		}
	})
	if err != nil {
		return domain.Order{}, err
	}

	if from != order.Status {
		s.log.InfoContext(ctx, "order cancelled by admin",
			slog.String("order_id", order.ID),
			slog.String("from", string(from)),
			slog.String("reason", reason),
		)
		s.publish(ctx, events.Event{
			Type:       events.TypeOrderStatusChanged,
			Key:        order.ID,
			OccurredAt: order.UpdatedAt,
			Payload: StatusChange{
				OrderID: order.ID,
				Number:  order.Number,
				From:    from,
				To:      order.Status,
				Source:  "admin",
				Reason:  reason,
			},
		})
	}
	return order, nil
}

// StatusChange is the payload of order.status_changed events.
type StatusChange struct {
	OrderID string        `json:"order_id"`
	Number  string        `json:"number"`
	From    domain.Status `json:"from"`
	To      domain.Status `json:"to"`
	Source  string        `json:"source"`
	Reason  string        `json:"reason,omitempty"`
	EventID string        `json:"provider_event_id,omitempty"`
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.metrics.EventPublishFailed()
		s.log.ErrorContext(ctx, "event publish failed", slog.String("type", e.Type), slog.String("key", e.Key), slog.Any("err", err))
	}
}

func validateCreate(req domain.CreateOrderRequest) error {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if _, ok := paymentdomain.ParseProvider(req.Provider); !ok {
		return fmt.Errorf("%w: unknown payment provider %q", ErrInvalidInput, req.Provider)
	}
	if req.ShippingAmount < 0 || req.ShippingAmount > MaxAmount {
		return fmt.Errorf("%w: shipping amount must be between 0 and %d, got %d", ErrInvalidInput, MaxAmount, req.ShippingAmount)
	}
	if req.TaxAmount < 0 || req.TaxAmount > MaxAmount {
		return fmt.Errorf("%w: tax amount must be between 0 and %d, got %d", ErrInvalidInput, MaxAmount, req.TaxAmount)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if strings.TrimSpace(item.ProductID) == "" {
			return fmt.Errorf("%w: item %d: product id is required", ErrInvalidInput, i)
		}
	}
	return nil
}

func toResponse(o domain.Order) domain.OrderResponse {
	return domain.OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		Reference:   o.Reference,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Crockford base32 without I, L, O, U.
const numberAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewOrderNumber returns a short customer-facing number such as SF-7K3QX9MD.
// Uniqueness is enforced by the store; callers retry on ErrDuplicateNumber.
func NewOrderNumber() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = numberAlphabet[int(v)%len(numberAlphabet)]
	}
	return numberPrefix + string(out)
}
