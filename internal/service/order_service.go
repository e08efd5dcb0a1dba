package service

import (
	"context"
	"errors"
	"fmt"

	"food_order/internal/model"
	"food_order/internal/repository"
	"food_order/internal/validation"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// OrderService defines operations for orders
type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]model.Order, error)
	GetOrderStatus(ctx context.Context, orderID int64) (*model.OrderStatusView, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*model.Order, error)
}

type orderService struct {
	repo      repository.OrderRepository
	validator *validation.Validator
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository, v *validation.Validator) OrderService {
	return &orderService{repo: repo, validator: v}
}

// CreateOrder validates the checkout payload and stores the order.
// Validation failures are returned as *validation.Error.
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPlaced
	}

	order := &model.Order{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Address:    req.Address,
		Items:      model.OrderItems(req.Items),
		TotalPrice: req.TotalPrice.Round(2),
		UserID:     req.UserID,
		Status:     status,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders from repo: %w", err)
	}
	return orders, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders from repo: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderStatus(ctx context.Context, orderID int64) (*model.OrderStatusView, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return &model.OrderStatusView{ID: order.ID, Status: order.Status}, nil
}

// UpdateOrderStatus sets any permitted status regardless of the current one,
// so staff can correct a mistaken transition.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status in repo: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
