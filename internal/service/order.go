package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

const priceTolerance = 1e-9

var (
	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrPriceMismatch   = errors.New("item price does not match the menu")
)

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	menu, err := s.store.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	if menu == nil {
		menu = []domain.MenuItem{}
	}
	return menu, nil
}

// AddMenuItem stores item and returns the updated menu.
func (s *OrderService) AddMenuItem(ctx context.Context, item domain.MenuItem) ([]domain.MenuItem, error) {
	if _, err := s.store.AddMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add menu item: %w", err)
	}
	return s.Menu(ctx)
}

// CreateOrder places an order for dinerID. Every item must reference a menu
// entry and carry its current price.
func (s *OrderService) CreateOrder(ctx context.Context, dinerID int64, req domain.CreateOrderRequest) (*domain.Order, error) {
	menu, err := s.store.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	prices := make(map[int64]float64, len(menu))
	for _, m := range menu {
		prices[m.ID] = m.Price
	}

	for _, item := range req.Items {
		price, ok := prices[item.MenuID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownMenuItem, item.MenuID)
		}
		if math.Abs(price-item.Price) > priceTolerance {
			return nil, fmt.Errorf("%w: %d", ErrPriceMismatch, item.MenuID)
		}
	}

	order := &domain.Order{
		DinerID:     dinerID,
		FranchiseID: req.FranchiseID,
		StoreID:     req.StoreID,
		Date:        time.Now().UTC(),
		Items:       req.Items,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Orders(ctx context.Context, dinerID int64) ([]domain.Order, error) {
	orders, err := s.store.OrdersByDiner(ctx, dinerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
