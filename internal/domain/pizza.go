package domain

import "time"

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type OrderItem struct {
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CreateOrderRequest struct {
	FranchiseID int64       `json:"franchiseId"`
	StoreID     int64       `json:"storeId"`
	Items       []OrderItem `json:"items"`
}

type Order struct {
	ID          int64       `json:"id"`
	DinerID     int64       `json:"-"`
	FranchiseID int64       `json:"franchiseId"`
	StoreID     int64       `json:"storeId"`
	Date        time.Time   `json:"date"`
	Items       []OrderItem `json:"items"`
}

type OrderResponse struct {
	Order *Order `json:"order"`
}
