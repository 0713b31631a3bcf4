package backoffice

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

type orderRow struct {
	ID            string  `csv:"id"`
	CustomerName  string  `csv:"customer_name"`
	Phone         string  `csv:"phone"`
	Address       string  `csv:"address"`
	Items         int     `csv:"items"`
	Subtotal      float64 `csv:"subtotal"`
	Shipping      float64 `csv:"shipping"`
	Total         float64 `csv:"total"`
	PaymentMethod string  `csv:"payment_method"`
	PaymentStatus string  `csv:"payment_status"`
	Status        string  `csv:"status"`
	CreatedAt     string  `csv:"created_at"`
}

// ExportOrdersCSV writes the orders mirror as CSV, one row per order with
// the line quantities summed into an item count.
func (m *Manager) ExportOrdersCSV(w io.Writer) error {
	orders := m.Orders()
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		var items int
		for _, line := range o.Items {
			items += line.Quantity
		}
		rows = append(rows, orderRow{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			Phone:         o.Phone,
			Address:       o.Address,
			Items:         items,
			Subtotal:      o.Subtotal,
			Shipping:      o.Shipping,
			Total:         o.Total,
			PaymentMethod: string(o.PaymentMethod),
			PaymentStatus: string(o.PaymentStatus),
			Status:        string(o.Status),
			CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return errors.Wrap(err, "export orders csv")
	}
	return nil
}
