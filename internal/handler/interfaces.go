package handler

//go:generate go tool mockery

import (
	"context"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type OrderService interface {
	Menu(ctx context.Context) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) ([]domain.MenuItem, error)
	CreateOrder(ctx context.Context, dinerID int64, req domain.CreateOrderRequest) (*domain.Order, error)
	Orders(ctx context.Context, dinerID int64) ([]domain.Order, error)
}

type RequestValidator interface {
	ValidateRegistration(req domain.RegisterRequest) error
	ValidateCredentials(req domain.LoginRequest) error
	ValidateMenuItem(item domain.MenuItem) error
	ValidateOrder(req domain.CreateOrderRequest) error
}

type ErrorLogger interface {
	LogError(message string)
}
