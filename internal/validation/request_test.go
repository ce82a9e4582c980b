package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
	"github.com/cs329-classwork/jwt-pizza-service/internal/validation"
)

func TestValidateRegistration(t *testing.T) {
	v := validation.NewRequestValidator(50, 4)

	tests := []struct {
		name    string
		req     domain.RegisterRequest
		wantErr error
	}{
		{"valid", domain.RegisterRequest{Name: "pizza diner", Email: "d@jwt.com", Password: "diner"}, nil},
		{"empty name", domain.RegisterRequest{Name: "  ", Email: "d@jwt.com", Password: "diner"}, validation.ErrEmptyName},
		{"empty email", domain.RegisterRequest{Name: "d", Email: "", Password: "diner"}, validation.ErrEmptyEmail},
		{"invalid email", domain.RegisterRequest{Name: "d", Email: "not-an-email", Password: "diner"}, validation.ErrInvalidEmail},
		{"display name form rejected", domain.RegisterRequest{Name: "d", Email: "Diner <d@jwt.com>", Password: "diner"}, validation.ErrInvalidEmail},
		{"empty password", domain.RegisterRequest{Name: "d", Email: "d@jwt.com"}, validation.ErrEmptyPassword},
		{"short password", domain.RegisterRequest{Name: "d", Email: "d@jwt.com", Password: "abc"}, validation.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	v := validation.NewRequestValidator(50, 8)

	assert.NoError(t, v.ValidateCredentials(domain.LoginRequest{Email: "a@jwt.com", Password: "a"}))
	assert.ErrorIs(t, v.ValidateCredentials(domain.LoginRequest{Password: "a"}), validation.ErrEmptyEmail)
	assert.ErrorIs(t, v.ValidateCredentials(domain.LoginRequest{Email: "a@jwt.com"}), validation.ErrEmptyPassword)
}

func TestValidateMenuItem(t *testing.T) {
	v := validation.NewRequestValidator(50, 1)

	assert.NoError(t, v.ValidateMenuItem(domain.MenuItem{Title: "Student", Price: 0.0001}))
	assert.ErrorIs(t, v.ValidateMenuItem(domain.MenuItem{Price: 1}), validation.ErrEmptyTitle)
	assert.ErrorIs(t, v.ValidateMenuItem(domain.MenuItem{Title: "Free", Price: 0}), validation.ErrInvalidPrice)
}

func TestValidateOrder(t *testing.T) {
	v := validation.NewRequestValidator(3, 1)
	item := domain.OrderItem{MenuID: 1, Description: "Veggie", Price: 0.0038}

	tests := []struct {
		name    string
		req     domain.CreateOrderRequest
		wantErr error
	}{
		{"valid", domain.CreateOrderRequest{FranchiseID: 1, StoreID: 1, Items: []domain.OrderItem{item}}, nil},
		{"missing store", domain.CreateOrderRequest{FranchiseID: 1, Items: []domain.OrderItem{item}}, validation.ErrMissingStore},
		{"no items", domain.CreateOrderRequest{FranchiseID: 1, StoreID: 1}, validation.ErrEmptyOrder},
		{"too many items", domain.CreateOrderRequest{FranchiseID: 1, StoreID: 1, Items: []domain.OrderItem{item, item, item, item}}, validation.ErrTooManyItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateOrder(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateOrder_ItemErrors(t *testing.T) {
	v := validation.NewRequestValidator(10, 1)

	err := v.ValidateOrder(domain.CreateOrderRequest{
		FranchiseID: 1,
		StoreID:     2,
		Items: []domain.OrderItem{
			{MenuID: 1, Price: 0.05},
			{MenuID: 0, Price: 0.05},
			{MenuID: 3, Price: -1},
		},
	})

	var itemErr *validation.ItemValidationError
	require.True(t, errors.As(err, &itemErr))
	require.Len(t, itemErr.Errors, 2)
	assert.Equal(t, 1, itemErr.Errors[0].Index)
	assert.ErrorIs(t, itemErr.Errors[0].Err, validation.ErrInvalidMenuID)
	assert.Equal(t, 2, itemErr.Errors[1].Index)
	assert.ErrorIs(t, itemErr.Errors[1].Err, validation.ErrInvalidPrice)
	assert.True(t, strings.HasPrefix(itemErr.Error(), "2 order items"))
}
