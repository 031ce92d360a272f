package customers

import "github.com/google/uuid"

// CustomerField is the minimal projection used to populate select
// options on the invoice form.
type CustomerField struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// CustomerSummary is one row of the customers table: the customer plus
// aggregates over every invoice they own. The pending and paid totals
// are raw cents here; formatting happens in the view projection.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	TotalInvoices int64     `json:"total_invoices" db:"total_invoices"`
	TotalPending  int64     `json:"total_pending" db:"total_pending"`
	TotalPaid     int64     `json:"total_paid" db:"total_paid"`
}
