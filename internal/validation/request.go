package validation

import (
	"math"
	"net/mail"
	"strings"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
)

type RequestValidator struct {
	maxOrderItems     int
	minPasswordLength int
}

func NewRequestValidator(maxOrderItems, minPasswordLength int) *RequestValidator {
	return &RequestValidator{
		maxOrderItems:     maxOrderItems,
		minPasswordLength: max(minPasswordLength, 1),
	}
}

func (v *RequestValidator) ValidateRegistration(req domain.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if err := v.validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	if len(req.Password) < v.minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateCredentials only checks presence; the length rule applies at
// registration.
func (v *RequestValidator) ValidateCredentials(req domain.LoginRequest) error {
	if err := v.validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *RequestValidator) ValidateMenuItem(item domain.MenuItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return ErrEmptyTitle
	}
	if !validPrice(item.Price) {
		return ErrInvalidPrice
	}
	return nil
}

func (v *RequestValidator) ValidateOrder(req domain.CreateOrderRequest) error {
	if req.FranchiseID <= 0 || req.StoreID <= 0 {
		return ErrMissingStore
	}
	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}
	if len(req.Items) > v.maxOrderItems {
		return ErrTooManyItems
	}

	var itemErrors []IndexedError
	for i, item := range req.Items {
		switch {
		case item.MenuID <= 0:
			itemErrors = append(itemErrors, IndexedError{Index: i, Err: ErrInvalidMenuID})
		case !validPrice(item.Price):
			itemErrors = append(itemErrors, IndexedError{Index: i, Err: ErrInvalidPrice})
		}
	}

	if len(itemErrors) > 0 {
		return &ItemValidationError{Errors: itemErrors}
	}
	return nil
}

func (v *RequestValidator) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
