package contract

import "encoding/json"

// SyncResponse is the data of orders.sync.
type SyncResponse struct {
	Message     string `json:"message"`
	SyncedCount int    `json:"syncedCount"`
}

// InvoiceResponse is the data of orders.invoice.
type InvoiceResponse struct {
	URL string `json:"url"`
}

// BulkStatusResponse is the data of orders.bulkStatus.
type BulkStatusResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// ErrorPayload is the error object of a failed response. Field is only set
// for validation failures.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorPayload   `json:"error,omitempty"`
}
