// Package cart holds the customer's in-progress selection. A cart only ever
// contains products from a single shop; switching shops requires ClearAndAdd.
package cart

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrShopConflict = errors.New("cart already holds items from another shop")

type Item struct {
	ShopID      uuid.UUID `json:"shop_id"`
	ShopName    string    `json:"shop_name"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// Cart invariant: every item shares ShopID, and ShopID is nil exactly when Items is empty.
type Cart struct {
	Items          []Item     `json:"items"`
	ShopID         *uuid.UUID `json:"shop_id"`
	ShopName       *string    `json:"shop_name"`
	DeliveryCharge float64    `json:"delivery_charge"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Conflicts reports whether adding a product from shopID would break single-shop affinity.
func (c *Cart) Conflicts(shopID uuid.UUID) bool {
	return !c.IsEmpty() && c.ShopID != nil && *c.ShopID != shopID
}

func (c *Cart) Has(productID uuid.UUID) bool {
	return c.indexOf(productID) >= 0
}

// AddItem returns false, leaving the cart untouched, when item belongs to a
// different shop than the current non-empty cart. Quantities below one count as one.
func (c *Cart) AddItem(item Item, deliveryCharge float64) bool {

	if c.Conflicts(item.ShopID) {
		return false
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if i := c.indexOf(item.ProductID); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return true
	}

	if c.IsEmpty() {
		shopID := item.ShopID
		shopName := item.ShopName
		c.ShopID = &shopID
		c.ShopName = &shopName
		c.DeliveryCharge = deliveryCharge
	}

	c.Items = append(c.Items, item)

	return true
}

func (c *Cart) RemoveItem(productID uuid.UUID) {

	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	c.Items = slices.Delete(c.Items, i, i+1)

	if c.IsEmpty() {
		c.Clear()
	}
}

// SetQuantity overwrites the line quantity. qty <= 0 removes the line.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) {

	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}

	if i := c.indexOf(productID); i >= 0 {
		c.Items[i].Quantity = qty
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
	c.ShopID = nil
	c.ShopName = nil
	c.DeliveryCharge = 0
}

// ClearAndAdd is the explicit shop switch: the cart is emptied and item added unconditionally.
func (c *Cart) ClearAndAdd(item Item, deliveryCharge float64) {
	c.Clear()
	c.AddItem(item, deliveryCharge)
}

func (c *Cart) Subtotal() float64 {

	sum := decimal.Zero

	for _, item := range c.Items {
		sum = sum.Add(LineTotal(item.Price, item.Quantity))
	}

	return sum.InexactFloat64()
}

func (c *Cart) Total() float64 {
	return decimal.NewFromFloat(c.Subtotal()).Add(decimal.NewFromFloat(c.DeliveryCharge)).InexactFloat64()
}

func (c *Cart) ItemCount() int {

	count := 0

	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// LineTotal is price * quantity in exact decimal arithmetic.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item Item) bool {
		return item.ProductID == productID
	})
}
