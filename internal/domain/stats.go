package domain

// DashboardStats is the back-office summary computed by scanning orders and
// products. TotalCustomers counts distinct order phone numbers, the de-facto
// customer identity.
type DashboardStats struct {
	TotalOrders     int       `json:"totalOrders"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalProducts   int       `json:"totalProducts"`
	TotalCustomers  int       `json:"totalCustomers"`
	PendingOrders   int       `json:"pendingOrders"`
	PendingPayments int       `json:"pendingPayments"`
	RecentOrders    []Order   `json:"recentOrders"`
	TopProducts     []Product `json:"topProducts"`
}
