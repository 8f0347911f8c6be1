package models

import (
	"time"

	"github.com/google/uuid"
)

type ShopStatus string

const (
	ShopStatusPending   ShopStatus = "pending"
	ShopStatusActive    ShopStatus = "active"
	ShopStatusSuspended ShopStatus = "suspended"
)

type BusinessHours struct {
	Open  string `json:"open" validate:"omitempty,datetime=15:04"`
	Close string `json:"close" validate:"omitempty,datetime=15:04"`
}

type Shop struct {
	ID               uuid.UUID     `json:"id"`
	OwnerID          uuid.UUID     `json:"owner_id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	Category         string        `json:"category"`
	Phone            string        `json:"phone"`
	Address          string        `json:"address"`
	ImageURL         string        `json:"image_url,omitempty"`
	DeliveryCharge   float64       `json:"delivery_charge"`
	DeliveryRadiusKm float64       `json:"delivery_radius_km"`
	BusinessHours    BusinessHours `json:"business_hours"`
	Status           ShopStatus    `json:"status"`
	IsOpen           bool          `json:"is_open"`
	CommissionRate   float64       `json:"commission_rate"`
	IsAdmin          bool          `json:"is_admin"`
	Rating           float64       `json:"rating"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// AcceptsOrders reports whether customers can currently check out with this shop.
func (s *Shop) AcceptsOrders() bool {
	return s.Status == ShopStatusActive && s.IsOpen
}

type CreateShopRequest struct {
	Name             string        `json:"name" validate:"required,min=2,max=120"`
	Description      string        `json:"description" validate:"max=1000"`
	Category         string        `json:"category" validate:"required,max=60"`
	Phone            string        `json:"phone" validate:"required,min=6,max=20"`
	Address          string        `json:"address" validate:"required,max=500"`
	DeliveryCharge   float64       `json:"delivery_charge" validate:"gte=0"`
	DeliveryRadiusKm float64       `json:"delivery_radius_km" validate:"gte=0"`
	BusinessHours    BusinessHours `json:"business_hours"`
}

type UpdateShopRequest struct {
	Name             *string        `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description      *string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category         *string        `json:"category,omitempty" validate:"omitempty,max=60"`
	Phone            *string        `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Address          *string        `json:"address,omitempty" validate:"omitempty,max=500"`
	DeliveryCharge   *float64       `json:"delivery_charge,omitempty" validate:"omitempty,gte=0"`
	DeliveryRadiusKm *float64       `json:"delivery_radius_km,omitempty" validate:"omitempty,gte=0"`
	BusinessHours    *BusinessHours `json:"business_hours,omitempty"`
}

type SetShopOpenRequest struct {
	IsOpen *bool `json:"is_open" validate:"required"`
}

type UpdateCommissionRequest struct {
	CommissionRate *float64 `json:"commission_rate" validate:"required,gte=0,lte=100"`
}
