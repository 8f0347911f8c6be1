package models

import "github.com/google/uuid"

type PlatformStats struct {
	TotalOrdersToday  int     `json:"total_orders_today"`
	TotalRevenueToday float64 `json:"total_revenue_today"`
	ActiveShops       int     `json:"active_shops"`
	TotalCustomers    int     `json:"total_customers"`
	PendingShops      int     `json:"pending_shops"`
}

type ProductSales struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type ShopAnalytics struct {
	ShopID            uuid.UUID      `json:"shop_id"`
	TotalOrders       int            `json:"total_orders"`
	PendingOrders     int            `json:"pending_orders"`
	OrdersToday       int            `json:"orders_today"`
	DeliveredOrders   int            `json:"delivered_orders"`
	RejectedOrders    int            `json:"rejected_orders"`
	RevenueToday      float64        `json:"revenue_today"`
	RevenueWeek       float64        `json:"revenue_week"`
	RevenueMonth      float64        `json:"revenue_month"`
	AverageOrderValue float64        `json:"average_order_value"`
	CommissionOwed    float64        `json:"commission_owed"`
	TopProducts       []ProductSales `json:"top_products"`
}

type ShopRevenue struct {
	ShopID   uuid.UUID `json:"shop_id"`
	ShopName string    `json:"shop_name"`
	Revenue  float64   `json:"revenue"`
	Orders   int       `json:"orders"`
}

type CommissionBreakdown struct {
	ShopID           uuid.UUID `json:"shop_id"`
	ShopName         string    `json:"shop_name"`
	CommissionRate   float64   `json:"commission_rate"`
	TotalSales       float64   `json:"total_sales"`
	DeliveredOrders  int       `json:"delivered_orders"`
	CommissionOwed   float64   `json:"commission_owed"`
	CommissionPaid   float64   `json:"commission_paid"`
	CommissionUnpaid float64   `json:"commission_unpaid"`
}

type AdminAnalytics struct {
	TotalOrders       int                   `json:"total_orders"`
	DeliveredOrders   int                   `json:"delivered_orders"`
	TotalRevenue      float64               `json:"total_revenue"`
	TotalCommission   float64               `json:"total_commission"`
	PendingCommission float64               `json:"pending_commission"`
	TopShops          []ShopRevenue         `json:"top_shops"`
	TopProducts       []ProductSales        `json:"top_products"`
	Commissions       []CommissionBreakdown `json:"commissions"`
}
