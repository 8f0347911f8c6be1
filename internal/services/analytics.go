package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const topN = 5

type AnalyticsService interface {
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
	ShopAnalytics(ctx context.Context, ownerID uuid.UUID) (*models.ShopAnalytics, error)
	AdminAnalytics(ctx context.Context) (*models.AdminAnalytics, error)
}

type analyticsService struct {
	orderRepo repository.OrderRepository
	shopRepo  repository.ShopRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

func NewAnalyticsService(orderRepo repository.OrderRepository, shopRepo repository.ShopRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{orderRepo: orderRepo, shopRepo: shopRepo, userRepo: userRepo, now: time.Now}
}

func (s *analyticsService) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {

	today := startOfDay(s.now())

	orders, err := s.orderRepo.ListOrdersSince(ctx, today, nil)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	counts, err := s.shopRepo.CountShopsByStatus(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count shops").WithError(err)
	}

	customers, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count customers").WithError(err)
	}

	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		}
	}

	return &models.PlatformStats{
		TotalOrdersToday:  len(orders),
		TotalRevenueToday: revenue.InexactFloat64(),
		ActiveShops:       counts[models.ShopStatusActive],
		PendingShops:      counts[models.ShopStatusPending],
		TotalCustomers:    customers,
	}, nil
}

func (s *analyticsService) ShopAnalytics(ctx context.Context, ownerID uuid.UUID) (*models.ShopAnalytics, error) {

	shop, err := s.shopRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	orders, err := s.orderRepo.ListOrdersByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return ComputeShopAnalytics(shop.ID, orders, s.now()), nil
}

func (s *analyticsService) AdminAnalytics(ctx context.Context) (*models.AdminAnalytics, error) {

	shops, err := s.shopRepo.ListShops(ctx, "")
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch shops").WithError(err)
	}

	orders, err := s.orderRepo.ListOrdersSince(ctx, time.Time{}, nil)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return ComputeAdminAnalytics(shops, orders), nil
}

// ComputeShopAnalytics derives a shop's dashboard figures. Revenue counts delivered orders only,
// bucketed by order creation time.
func ComputeShopAnalytics(shopID uuid.UUID, orders []models.Order, now time.Time) *models.ShopAnalytics {

	today := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)

	var revenueToday, revenueWeek, revenueMonth, revenueAll, owed decimal.Decimal

	result := &models.ShopAnalytics{
		ShopID:      shopID,
		TotalOrders: len(orders),
	}

	delivered := make([]models.Order, 0, len(orders))

	for _, o := range orders {

		if !o.CreatedAt.Before(today) {
			result.OrdersToday++
		}

		switch o.Status {
		case models.OrderStatusPending:
			result.PendingOrders++
		case models.OrderStatusRejected:
			result.RejectedOrders++
		case models.OrderStatusDelivered:
			result.DeliveredOrders++
			delivered = append(delivered, o)

			total := decimal.NewFromFloat(o.Total)
			revenueAll = revenueAll.Add(total)

			if !o.CreatedAt.Before(today) {
				revenueToday = revenueToday.Add(total)
			}
			if !o.CreatedAt.Before(week) {
				revenueWeek = revenueWeek.Add(total)
			}
			if !o.CreatedAt.Before(month) {
				revenueMonth = revenueMonth.Add(total)
			}
			if !o.CommissionPaid {
				owed = owed.Add(decimal.NewFromFloat(o.CommissionAmount))
			}
		}
	}

	result.RevenueToday = revenueToday.InexactFloat64()
	result.RevenueWeek = revenueWeek.InexactFloat64()
	result.RevenueMonth = revenueMonth.InexactFloat64()
	result.CommissionOwed = owed.InexactFloat64()

	if result.DeliveredOrders > 0 {
		result.AverageOrderValue = revenueAll.Div(decimal.NewFromInt(int64(result.DeliveredOrders))).Round(0).InexactFloat64()
	}

	result.TopProducts = topProducts(delivered)

	return result
}

// ComputeAdminAnalytics aggregates platform revenue and commission over delivered orders.
// Shops with no delivered orders are left out of the commission breakdown.
func ComputeAdminAnalytics(shops []models.Shop, orders []models.Order) *models.AdminAnalytics {

	shopsByID := make(map[uuid.UUID]models.Shop, len(shops))
	for _, shop := range shops {
		shopsByID[shop.ID] = shop
	}

	type tally struct {
		name      string
		rate      float64
		sales     decimal.Decimal
		orders    int
		owed      decimal.Decimal
		paid      decimal.Decimal
		firstSeen int
	}

	tallies := map[uuid.UUID]*tally{}
	delivered := make([]models.Order, 0, len(orders))

	var revenue, commission, pending decimal.Decimal

	for _, o := range orders {

		if o.Status != models.OrderStatusDelivered {
			continue
		}

		delivered = append(delivered, o)

		total := decimal.NewFromFloat(o.Total)
		amount := decimal.NewFromFloat(o.CommissionAmount)

		revenue = revenue.Add(total)
		commission = commission.Add(amount)

		t, ok := tallies[o.ShopID]
		if !ok {
			t = &tally{name: o.ShopName, rate: o.CommissionRate, firstSeen: len(tallies)}
			if shop, known := shopsByID[o.ShopID]; known {
				t.name = shop.Name
				t.rate = shop.CommissionRate
			}
			tallies[o.ShopID] = t
		}

		t.sales = t.sales.Add(total)
		t.orders++
		t.owed = t.owed.Add(amount)

		if o.CommissionPaid {
			t.paid = t.paid.Add(amount)
		} else {
			pending = pending.Add(amount)
		}
	}

	breakdown := make([]models.CommissionBreakdown, 0, len(tallies))
	revenues := make([]models.ShopRevenue, 0, len(tallies))

	for shopID, t := range tallies {
		breakdown = append(breakdown, models.CommissionBreakdown{
			ShopID:           shopID,
			ShopName:         t.name,
			CommissionRate:   t.rate,
			TotalSales:       t.sales.InexactFloat64(),
			DeliveredOrders:  t.orders,
			CommissionOwed:   t.owed.InexactFloat64(),
			CommissionPaid:   t.paid.InexactFloat64(),
			CommissionUnpaid: t.owed.Sub(t.paid).InexactFloat64(),
		})
		revenues = append(revenues, models.ShopRevenue{
			ShopID:   shopID,
			ShopName: t.name,
			Revenue:  t.sales.InexactFloat64(),
			Orders:   t.orders,
		})
	}

	slices.SortFunc(breakdown, func(a, b models.CommissionBreakdown) int {
		if c := cmp.Compare(b.TotalSales, a.TotalSales); c != 0 {
			return c
		}
		return cmp.Compare(tallies[a.ShopID].firstSeen, tallies[b.ShopID].firstSeen)
	})

	slices.SortFunc(revenues, func(a, b models.ShopRevenue) int {
		if c := cmp.Compare(b.Revenue, a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(tallies[a.ShopID].firstSeen, tallies[b.ShopID].firstSeen)
	})

	if len(revenues) > topN {
		revenues = revenues[:topN]
	}

	return &models.AdminAnalytics{
		TotalOrders:       len(orders),
		DeliveredOrders:   len(delivered),
		TotalRevenue:      revenue.InexactFloat64(),
		TotalCommission:   commission.InexactFloat64(),
		PendingCommission: pending.InexactFloat64(),
		TopShops:          revenues,
		TopProducts:       topProducts(delivered),
		Commissions:       breakdown,
	}
}

// topProducts ranks products by quantity sold, ties broken by first appearance.
func topProducts(orders []models.Order) []models.ProductSales {

	index := map[string]int{}
	sales := []models.ProductSales{}
	revenue := []decimal.Decimal{}

	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.ProductName]
			if !ok {
				i = len(sales)
				index[item.ProductName] = i
				sales = append(sales, models.ProductSales{ProductName: item.ProductName})
				revenue = append(revenue, decimal.Zero)
			}
			sales[i].Quantity += item.Quantity
			revenue[i] = revenue[i].Add(decimal.NewFromFloat(item.Subtotal))
		}
	}

	for i := range sales {
		sales[i].Revenue = revenue[i].InexactFloat64()
	}

	slices.SortStableFunc(sales, func(a, b models.ProductSales) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})

	if len(sales) > topN {
		sales = sales[:topN]
	}

	return sales
}
