package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopOwner Role = "shop_owner"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Addresses []string  `json:"addresses,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// for registration
type RegisterRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Name      string   `json:"name" validate:"required,max=120"`
	Phone     string   `json:"phone" validate:"required,min=6,max=20"`
	Role      Role     `json:"role" validate:"omitempty,oneof=customer shop_owner"`
	Addresses []string `json:"addresses,omitempty" validate:"omitempty,max=5,dive,max=500"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// for login response
type LoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	ExpiresIn      int    `json:"expires_in,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
	Message        string `json:"message,omitempty"`
}

// JWT claims structure. ShopID is set for shop owners that have registered a shop.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	ShopID uuid.UUID `json:"shop_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
