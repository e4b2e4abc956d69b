package models

import "time"

// Return types.
const (
	ReturnTypeRTO            = "RTO"
	ReturnTypeCustomerReturn = "CUSTOMER_RETURN"
)

// Return statuses.
const (
	ReturnStatusRequested = "REQUESTED"
	ReturnStatusApproved  = "APPROVED"
	ReturnStatusReceived  = "RECEIVED"
	ReturnStatusRejected  = "REJECTED"
)

// Return is a return request or an RTO (return to origin) shipment.
type Return struct {
	ID         int       `db:"id" json:"id"`
	OrderID    *int      `db:"order_id" json:"orderId"`
	ReturnID   string    `db:"return_id" json:"returnId"`
	Reason     *string   `db:"reason" json:"reason"`
	Type       *string   `db:"type" json:"type"`
	Status     *string   `db:"status" json:"status"`
	TrackingID *string   `db:"tracking_id" json:"trackingId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
