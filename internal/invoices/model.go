package invoices

import (
	"time"

	"github.com/google/uuid"
)

// Invoice status values. The store constrains the column to these two.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice mirrors one stored row. Amount is integer cents.
type Invoice struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Status     string    `json:"status" db:"status"`
	Date       time.Time `json:"date" db:"date"`
}

// LatestInvoice is one of the most recent invoices joined with its
// customer. The raw cent amount is carried through; formatting happens
// at the view boundary only.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Amount   int64     `json:"amount" db:"amount"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	ImageURL string    `json:"image_url" db:"image_url"`
}

// InvoiceRow is one row of the paginated invoices table.
type InvoiceRow struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Amount   int64     `json:"amount" db:"amount"`
	Date     time.Time `json:"date" db:"date"`
	Status   string    `json:"status" db:"status"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	ImageURL string    `json:"image_url" db:"image_url"`
}

// InvoiceForm backs the edit form. Amount is in major currency units
// (stored cents divided by 100).
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}
