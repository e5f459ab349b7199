package grpc

import (
	"context"
	"errors"
	"time"

	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.CreateOrderResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "items must not be empty")
	}

	order, err := s.svc.CreateOrder(ctx, mapCreateOrderReq(req))
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.CreateOrderResponse{Order: toProto(order)}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.GetOrderResponse, error) {
	order, err := s.lookup(ctx, req.GetId(), req.GetNumber())
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.GetOrderResponse{Order: toProto(order)}, nil
}

func (s *Server) ListCustomerOrders(ctx context.Context, req *orderv1.ListCustomerOrdersRequest) (*orderv1.ListCustomerOrdersResponse, error) {
	orders, err := s.svc.ListCustomerOrders(ctx, req.GetEmail(), int(req.GetLimit()))
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProto(o))
	}
	return &orderv1.ListCustomerOrdersResponse{Orders: out}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *orderv1.CancelOrderRequest) (*orderv1.CancelOrderResponse, error) {
	current, err := s.lookup(ctx, req.GetId(), req.GetNumber())
	if err != nil {
		return nil, mapErr(err)
	}
	order, err := s.svc.CancelOrder(ctx, current.ID, req.GetReason())
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.CancelOrderResponse{
		Order:          toProto(order),
		PreviousStatus: string(current.Status),
	}, nil
}

func (s *Server) lookup(ctx context.Context, id, number string) (domain.Order, error) {
	if id != "" {
		return s.svc.GetOrder(ctx, id)
	}
	return s.svc.GetOrderByNumber(ctx, number)
}

func mapCreateOrderReq(req *orderv1.CreateOrderRequest) domain.CreateOrderRequest {
	items := make([]domain.OrderItemRequest, 0, len(req.GetItems()))
	for _, item := range req.GetItems() {
		if item == nil {
			continue
		}
		items = append(items, domain.OrderItemRequest{
			ProductID:    item.GetProductId(),
			UnitAmount:   item.GetUnitAmount(),
			Quantity:     item.GetQuantity(),
			VariantSize:  item.GetVariantSize(),
			VariantColor: item.GetVariantColor(),
		})
	}

	ship := req.GetShipping()
	return domain.CreateOrderRequest{
		CustomerEmail: req.GetCustomerEmail(),
		Customer: domain.CustomerProfile{
			Name:  req.GetCustomerName(),
			Phone: req.GetCustomerPhone(),
		},
		Provider:       req.GetProvider(),
		ShippingAmount: req.GetShippingAmount(),
		TaxAmount:      req.GetTaxAmount(),
		Shipping: domain.ShippingInfo{
			Name:       ship.GetName(),
			Address:    ship.GetAddress(),
			City:       ship.GetCity(),
			Country:    ship.GetCountry(),
			PostalCode: ship.GetPostalCode(),
		},
		Items: items,
	}
}

func toProto(o domain.Order) *orderv1.Order {
	items := make([]*orderv1.OrderItem, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, &orderv1.OrderItem{
			Id:              it.ID,
			ProductId:       it.ProductID,
			Sku:             it.SKU,
			Name:            it.Name,
			VariantSize:     it.VariantSize,
			VariantColor:    it.VariantColor,
			UnitAmount:      it.UnitAmount,
			Quantity:        it.Quantity,
			LineTotalAmount: it.LineTotalAmount,
		})
	}

	return &orderv1.Order{
		Id:             o.ID,
		Number:         o.Number,
		Reference:      o.Reference,
		CustomerEmail:  o.CustomerEmail,
		Provider:       o.Provider,
		Status:         string(o.Status),
		Currency:       o.Currency,
		SubtotalAmount: o.SubTotalAmount,
		ShippingAmount: o.ShippingAmount,
		TaxAmount:      o.TaxAmount,
		TotalAmount:    o.TotalAmount,
		Shipping: &orderv1.Shipping{
			Name:       o.Shipping.Name,
			Address:    o.Shipping.Address,
			City:       o.Shipping.City,
			Country:    o.Shipping.Country,
			PostalCode: o.Shipping.PostalCode,
		},
		Items:     items,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrProductUnavailable), errors.Is(err, app.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, app.ErrCustomerResolution), errors.Is(err, app.ErrPersistence):
		return status.Error(codes.Unavailable, "order store unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
