package backoffice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yazanstore/storefront/internal/domain"
)

func TestExportOrdersCSV(t *testing.T) {
	admin, _, db := newManagers(t)
	db.Orders.Create(&domain.Order{
		CustomerName: "Omar",
		Phone:        "0100",
		Address:      "Cairo",
		Items: []domain.OrderItem{
			{Product: domain.ProductSnapshot{ID: "p-1", Price: 100}, Quantity: 2},
			{Product: domain.ProductSnapshot{ID: "p-2", Price: 50}, Quantity: 1},
		},
		Subtotal:      250,
		Shipping:      50,
		Total:         300,
		PaymentMethod: domain.PaymentCOD,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
	})
	admin.RefreshAll()

	var sb strings.Builder
	require.NoError(t, admin.ExportOrdersCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "customer_name")
	assert.Contains(t, lines[1], "Omar")
	assert.Contains(t, lines[1], "300")
	// item count sums line quantities
	assert.Contains(t, lines[1], ",3,")
}
