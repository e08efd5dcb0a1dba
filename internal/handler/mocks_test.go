package handler

import (
	"context"
	"mime/multipart"

	"food_order/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*model.User)
	return user, args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, mobile, password string) (*model.User, string, error) {
	args := m.Called(ctx, mobile, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.String(1), args.Error(2)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *mockOrderService) ListUserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *mockOrderService) GetOrderStatus(ctx context.Context, orderID int64) (*model.OrderStatusView, error) {
	args := m.Called(ctx, orderID)
	view, _ := args.Get(0).(*model.OrderStatusView)
	return view, args.Error(1)
}

func (m *mockOrderService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*model.Order, error) {
	args := m.Called(ctx, orderID, status)
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

type mockUploadService struct{ mock.Mock }

func (m *mockUploadService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

type mockPinger struct{ err error }

func (p mockPinger) Ping(context.Context) error { return p.err }
