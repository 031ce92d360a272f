package invoices

import (
	"time"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

type ListInvoicesRequest struct {
	Query string `json:"query" validate:"max=200"`
	Page  int    `json:"page" validate:"min=1"`
}

type LatestInvoiceView struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

type InvoiceRowView struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

type PagesView struct {
	TotalPages int `json:"totalPages"`
}

func toLatestView(in LatestInvoice) LatestInvoiceView {
	return LatestInvoiceView{
		ID:       in.ID.String(),
		Amount:   shared.FormatCents(in.Amount),
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: in.ImageURL,
	}
}

func toRowView(in InvoiceRow) InvoiceRowView {
	return InvoiceRowView{
		ID:       in.ID.String(),
		Amount:   in.Amount,
		Date:     in.Date.UTC().Format(time.RFC3339),
		Status:   in.Status,
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: in.ImageURL,
	}
}
