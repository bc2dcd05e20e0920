package order

import "time"

// Order represents a production order under inspection. Buyer holds the
// buyer-determination result for the order; AQL plans are resolved against it.
type Order struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	StyleNo   string    `json:"style_no"`
	PONumber  string    `json:"po_number"`
	Buyer     string    `json:"buyer"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
