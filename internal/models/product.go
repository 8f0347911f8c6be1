package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	OfferPrice  *float64  `json:"offer_price,omitempty"`
	InStock     bool      `json:"in_stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImagePath   string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EffectivePrice is the price a customer pays: the offer price when one is set, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.OfferPrice != nil && *p.OfferPrice > 0 {
		return *p.OfferPrice
	}

	return p.Price
}

// ListedProduct is a product joined with the shop fields the catalog shows next to it.
type ListedProduct struct {
	Product
	ShopName       string  `json:"shop_name"`
	DeliveryCharge float64 `json:"delivery_charge"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Category    string   `json:"category" validate:"required,max=60"`
	Unit        string   `json:"unit" validate:"required,max=20"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	OfferPrice  *float64 `json:"offer_price,omitempty" validate:"omitempty,gt=0"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	OfferPrice  *float64 `json:"offer_price,omitempty" validate:"omitempty,gte=0"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

type SetStockRequest struct {
	InStock *bool `json:"in_stock" validate:"required"`
}

// GroupedProduct collapses same-named products across shops into one catalog entry.
type GroupedProduct struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	ImageURL  string  `json:"image_url,omitempty"`
	MinPrice  float64 `json:"min_price"`
	ShopCount int     `json:"shop_count"`
}

// ShopOffer is one shop's listing of a product, used to compare prices across shops.
type ShopOffer struct {
	ShopID         uuid.UUID `json:"shop_id"`
	ShopName       string    `json:"shop_name"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Unit           string    `json:"unit"`
	Price          float64   `json:"price"`
	OfferPrice     *float64  `json:"offer_price,omitempty"`
	EffectivePrice float64   `json:"effective_price"`
	DeliveryCharge float64   `json:"delivery_charge"`
	ImageURL       string    `json:"image_url,omitempty"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Size     int       `json:"size"`
}
