package revenue

// Revenue is one month of recognised revenue, stored in whole dollars
// by the upstream seed and returned unmodified.
type Revenue struct {
	Month   string `json:"month" db:"month"`
	Revenue int64  `json:"revenue" db:"revenue"`
}
