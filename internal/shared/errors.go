package shared

// DataAccessError is the single failure kind surfaced by the query layer.
// Every store failure collapses to this type at the boundary of the
// operation that hit it; the low-level cause is kept for diagnostics but
// never appears in the message callers see.
type DataAccessError struct {
	// Op names the failed operation, e.g. "the latest invoices".
	Op    string
	cause error
}

// NewDataAccessError wraps a store failure for the named operation.
func NewDataAccessError(op string, cause error) *DataAccessError {
	return &DataAccessError{Op: op, cause: cause}
}

func (e *DataAccessError) Error() string {
	return "failed to fetch " + e.Op
}

// Unwrap exposes the cause to errors.Is/As chains used in logging.
func (e *DataAccessError) Unwrap() error {
	return e.cause
}
