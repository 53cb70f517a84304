package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldMonthKey   = "month_key"
	FieldDate       = "date"
	FieldFishing    = "fishing_location"
	FieldSell       = "sell_location"
	FieldProfit     = "profit"
	FieldTotal      = "total"
	FieldMonths     = "months"
	FieldSessions   = "sessions"
	FieldPath       = "path"
	FieldBackend    = "backend"
	FieldEventType  = "event_type"
	FieldExchange   = "exchange"
	FieldQueue      = "queue"
	FieldMenuChoice = "choice"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentShell   = "shell"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpLoad        = "load"
	OpSave        = "save"
	OpCreateMonth = "create_month"
	OpDeleteMonth = "delete_month"
	OpAppend      = "append_session"
	OpMonthTotal  = "total_for_month"
	OpLifetime    = "total_lifetime"
	OpPublish     = "publish"
	OpMigrate     = "migrate"
	OpStartup     = "startup"
	OpShutdown    = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeInput         = "input_error"
	ErrorTypeNotFound      = "not_found_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMonth adds the month-key field
func (f LogFields) WithMonth(key string) LogFields {
	f[FieldMonthKey] = key
	return f
}

// WithSession adds session-related fields
func (f LogFields) WithSession(date, fishing, sell string, profit int64) LogFields {
	f[FieldDate] = date
	f[FieldFishing] = fishing
	f[FieldSell] = sell
	f[FieldProfit] = profit
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
