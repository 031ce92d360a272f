package customers

import "github.com/acme-dashboard/acme-dashboard/internal/shared"

type FilterCustomersRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type CustomerSummaryView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

func toSummaryView(in CustomerSummary) CustomerSummaryView {
	return CustomerSummaryView{
		ID:            in.ID.String(),
		Name:          in.Name,
		Email:         in.Email,
		ImageURL:      in.ImageURL,
		TotalInvoices: in.TotalInvoices,
		TotalPending:  shared.FormatCents(in.TotalPending),
		TotalPaid:     shared.FormatCents(in.TotalPaid),
	}
}
