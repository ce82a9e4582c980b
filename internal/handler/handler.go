package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cs329-classwork/jwt-pizza-service/internal/domain"
	"github.com/cs329-classwork/jwt-pizza-service/internal/service"
	"github.com/cs329-classwork/jwt-pizza-service/internal/validation"
)

const userKey = "user"

var (
	errInvalidBody  = map[string]string{"error": "invalid request body"}
	errUnauthorized = map[string]string{"error": "unauthorized"}
	respHealthOK    = map[string]string{"status": "ok"}
	respLogout      = map[string]string{"message": "logout successful"}
)

type Handler struct {
	auth      AuthService
	orders    OrderService
	validator RequestValidator
	logger    *slog.Logger
}

func New(
	auth AuthService,
	orders OrderService,
	validator RequestValidator,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		orders:    orders,
		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.Health)

	api.POST("/auth", h.RegisterUser)
	api.PUT("/auth", h.Login)
	api.DELETE("/auth", h.Logout, h.Authenticated)

	api.GET("/order/menu", h.GetMenu)
	api.PUT("/order/menu", h.AddMenuItem, h.Authenticated)
	api.GET("/order", h.ListOrders, h.Authenticated)
	api.POST("/order", h.CreateOrder, h.Authenticated)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Authenticated resolves the bearer token and stores the user on the context.
func (h *Handler) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errUnauthorized)
		}

		user, err := h.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, errUnauthorized)
			}
			return internalError("failed to authenticate", err)
		}

		c.Set(userKey, user)
		return next(c)
	}
}

func (h *Handler) RegisterUser(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateRegistration(req); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return statusError(http.StatusConflict, "email already registered", err)
		}
		return internalError("failed to register user", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateCredentials(req); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return statusError(http.StatusUnauthorized, "invalid credentials", err)
		}
		return internalError("failed to log in", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	token, _ := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return statusError(http.StatusUnauthorized, "unauthorized", err)
		}
		return internalError("failed to log out", err)
	}

	return c.JSON(http.StatusOK, respLogout)
}

func (h *Handler) GetMenu(c echo.Context) error {
	menu, err := h.orders.Menu(c.Request().Context())
	if err != nil {
		return internalError("failed to load menu", err)
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) AddMenuItem(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateMenuItem(item); err != nil {
		return h.handleValidationError(c, err)
	}

	menu, err := h.orders.AddMenuItem(c.Request().Context(), item)
	if err != nil {
		return internalError("failed to add menu item", err)
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) ListOrders(c echo.Context) error {
	user := c.Get(userKey).(*domain.User)

	orders, err := h.orders.Orders(c.Request().Context(), user.ID)
	if err != nil {
		return internalError("failed to load orders", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"dinerId": user.ID, "orders": orders})
}

func (h *Handler) CreateOrder(c echo.Context) error {
	user := c.Get(userKey).(*domain.User)

	var req domain.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateOrder(req); err != nil {
		return h.handleValidationError(c, err)
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMenuItem):
			return statusError(http.StatusBadRequest, "unknown menu item", err)
		case errors.Is(err, service.ErrPriceMismatch):
			return statusError(http.StatusBadRequest, "item price does not match the menu", err)
		}
		return internalError("failed to fulfill order", err)
	}

	h.logger.Debug("order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("diner_id", user.ID),
		slog.Int("items", len(order.Items)))

	return c.JSON(http.StatusOK, domain.OrderResponse{Order: order})
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

var validationErrors = []error{
	validation.ErrEmptyName,
	validation.ErrEmptyEmail,
	validation.ErrInvalidEmail,
	validation.ErrEmptyPassword,
	validation.ErrPasswordTooShort,
	validation.ErrMissingStore,
	validation.ErrEmptyOrder,
	validation.ErrTooManyItems,
	validation.ErrEmptyTitle,
	validation.ErrInvalidPrice,
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var itemErr *validation.ItemValidationError
	if errors.As(err, &itemErr) {
		return c.JSON(http.StatusBadRequest, formatItemErrors(itemErr))
	}

	for _, known := range validationErrors {
		if errors.Is(err, known) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": known.Error()})
		}
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
}

func formatItemErrors(err *validation.ItemValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
