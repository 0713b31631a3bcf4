package store

import (
	"sort"

	"github.com/yazanstore/storefront/internal/domain"
)

// StatsStore computes back-office dashboard statistics. Every call scans
// the full orders and products collections, no caching.
type StatsStore struct {
	orders   *Collection[*domain.Order]
	products *Collection[*domain.Product]
}

// GetDashboardStats summarizes orders and products. Revenue counts paid
// orders only; customers are distinct order phone numbers.
func (s *StatsStore) GetDashboardStats() domain.DashboardStats {
	orders := s.orders.GetAll()
	products := s.products.GetAll()

	stats := domain.DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}

	phones := make(map[string]struct{})
	for _, o := range orders {
		phones[o.Phone] = struct{}{}
		if o.PaymentStatus == domain.PaymentPaid {
			stats.TotalRevenue += o.Total
		}
		if o.Status == domain.OrderPending {
			stats.PendingOrders++
		}
		if o.PaymentStatus == domain.PaymentPending {
			stats.PendingPayments++
		}
	}
	stats.TotalCustomers = len(phones)

	sorted := append([]*domain.Order(nil), orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	for _, o := range sorted {
		if len(stats.RecentOrders) == 5 {
			break
		}
		stats.RecentOrders = append(stats.RecentOrders, *o)
	}

	// First five featured products, not ranked by sales.
	for _, p := range products {
		if !p.Featured {
			continue
		}
		stats.TopProducts = append(stats.TopProducts, *p)
		if len(stats.TopProducts) == 5 {
			break
		}
	}

	return stats
}
