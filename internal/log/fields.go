package log

import (
	"maps"
	"slices"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldSource    = "source"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldMonth     = "month"
	FieldRecords   = "records"
	FieldTotal     = "total"
	FieldPayment   = "payment_method"
	FieldCode      = "code"
	FieldRecord    = "record"
	FieldSink      = "sink"
	FieldSheetsRef = "sheets_ref"
	FieldSheet     = "sheet"
	FieldExchange  = "exchange"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentExport  = "export"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentSheets  = "sheets"
)

// Operations defines standard operation names
const (
	OpOpen      = "open"
	OpResolve   = "resolve"
	OpQuery     = "query"
	OpTransform = "transform"
	OpRender    = "render"
	OpPublish   = "publish"
	OpStartup   = "startup"
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

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRange adds the resolved date range
func (f LogFields) WithRange(start, end string) LogFields {
	f[FieldStart] = start
	f[FieldEnd] = end
	return f
}

// ToSlice converts LogFields to a slice for slog, ordered by key
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for _, k := range slices.Sorted(maps.Keys(f)) {
		slice = append(slice, k, f[k])
	}
	return slice
}
