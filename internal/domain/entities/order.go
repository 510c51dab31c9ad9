package entities

import "time"

// OrderStatus is the local, provider-agnostic status vocabulary. Raw Mercado
// Pago payment statuses are mapped into it by the webhook use case.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusChargeback OrderStatus = "chargeback"
	OrderStatusUnknown    OrderStatus = "unknown"
)

// OrderItem is a checkout item with its computed line total.
type OrderItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Order is the local record of a checkout attempt, created only after the
// provider confirms preference creation and never mutated after the
// persistence handoff.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (preference_id-index): preference_id
type Order struct {
	ID           string       `json:"id"`
	Customer     CustomerInfo `json:"customer_info"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  int64        `json:"total_amount"`
	TotalItems   int64        `json:"total_items"`
	PreferenceID string       `json:"preference_id"`
	PaymentURL   string       `json:"payment_url,omitempty"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}
