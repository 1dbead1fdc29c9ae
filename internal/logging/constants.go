package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldBillID    = "bill_id"
	FieldVendor    = "vendor"
	FieldCategory  = "category"
	FieldTemplate  = "template"
	FieldAmount    = "amount"
	FieldCheck     = "check"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldCount     = "count"
	FieldKeyword   = "keyword"
	FieldStrategy  = "strategy"
)
