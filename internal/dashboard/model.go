package dashboard

// CardMetrics holds the four aggregates shown on the overview cards.
// The two totals are formatted currency strings; the counts are raw.
type CardMetrics struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}
