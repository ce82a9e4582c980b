package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
	"github.com/cs329-classwork/jwt-pizza-service/internal/repository"
)

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()

	u, err := s.CreateUser(ctx, "pizza diner", "d@jwt.com", []byte("hash"))
	require.NoError(t, err)
	assert.Positive(t, u.ID)

	_, err = s.CreateUser(ctx, "again", "D@JWT.com", []byte("hash"))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	byEmail, err := s.UserByEmail(ctx, "D@jwt.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, []byte("hash"), byEmail.PasswordHash)

	byID, err := s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "pizza diner", byID.Name)

	_, err = s.UserByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = s.UserByEmail(ctx, "nobody@jwt.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()

	u, err := s.CreateUser(ctx, "pizza diner", "d@jwt.com", []byte("hash"))
	require.NoError(t, err)
	u.Name = "changed"

	stored, err := s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "pizza diner", stored.Name)
}

func TestMemoryStore_Sessions(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	u, err := s.CreateUser(ctx, "d", "d@jwt.com", []byte("h"))
	require.NoError(t, err)

	require.NoError(t, s.CreateSession(ctx, "tok", u.ID, time.Now().Add(time.Hour)))
	id, err := s.SessionUser(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	require.NoError(t, s.DeleteSession(ctx, "tok"))
	_, err = s.SessionUser(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.DeleteSession(ctx, "tok"), repository.ErrNotFound)

	assert.ErrorIs(t, s.CreateSession(ctx, "orphan", 999, time.Now().Add(time.Hour)), repository.ErrNotFound)
}

func TestMemoryStore_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	u, err := s.CreateUser(ctx, "d", "d@jwt.com", []byte("h"))
	require.NoError(t, err)

	require.NoError(t, s.CreateSession(ctx, "old", u.ID, time.Now().Add(-time.Second)))
	_, err = s.SessionUser(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStore_MenuAndOrders(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	u, err := s.CreateUser(ctx, "d", "d@jwt.com", []byte("h"))
	require.NoError(t, err)

	veggie, err := s.AddMenuItem(ctx, domain.MenuItem{Title: "Veggie", Description: "A garden of delight", Price: 0.0038})
	require.NoError(t, err)
	_, err = s.AddMenuItem(ctx, domain.MenuItem{Title: "Pepperoni", Price: 0.0042})
	require.NoError(t, err)

	menu, err := s.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, veggie.ID, menu[0].ID)

	order := &domain.Order{
		DinerID:     u.ID,
		FranchiseID: 1,
		StoreID:     1,
		Date:        time.Now(),
		Items:       []domain.OrderItem{{MenuID: veggie.ID, Description: "Veggie", Price: 0.0038}},
	}
	require.NoError(t, s.CreateOrder(ctx, order))
	assert.Positive(t, order.ID)

	orders, err := s.OrdersByDiner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Len(t, orders[0].Items, 1)

	none, err := s.OrdersByDiner(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.ErrorIs(t, s.CreateOrder(ctx, &domain.Order{DinerID: 999}), repository.ErrNotFound)
}
