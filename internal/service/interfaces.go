package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

type UserStore interface {
	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateSession(ctx context.Context, token string, userID int64, expires time.Time) error
	SessionUser(ctx context.Context, token string) (int64, error)
	DeleteSession(ctx context.Context, token string) error
}

type OrderStore interface {
	Menu(ctx context.Context) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	OrdersByDiner(ctx context.Context, dinerID int64) ([]domain.Order, error)
}

type SessionCache interface {
	Get(token string) (int64, bool)
	Set(token string, userID int64)
	Delete(token string)
}
