package models

import "time"

// Order statuses assigned by the backend. The client never invents one.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderWeighed    = "weighed"
	OrderShipped    = "shipped"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

const (
	PayCash     = "cash"
	PayTransfer = "transfer"
	PayCard     = "card"
)

// OrderItem is one line of an order. Quantity is omitted for weight-based
// products; weight carries the billable amount either way.
type OrderItem struct {
	ID            string   `json:"id,omitempty"`
	SeafoodID     string   `json:"seafood_id"`
	Seafood       *Product `json:"seafood,omitempty"`
	ImportBatchID string   `json:"import_batch_id,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	Weight        float64  `json:"weight"`
	UnitPrice     float64  `json:"unit_price"`
	Subtotal      float64  `json:"subtotal,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// Order as persisted by the backend; order code, timestamps and computed
// amounts are assigned server-side on acceptance.
type Order struct {
	ID              string      `json:"id"`
	OrderCode       string      `json:"order_code"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	PaymentStatus   string      `json:"payment_status"`
	Status          string      `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	DiscountAmount  float64     `json:"discount_amount"`
	TotalAmount     float64     `json:"total_amount"`
	PaidAmount      float64     `json:"paid_amount"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CreateOrderRequest is the payload for order submission.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	PaymentStatus   string      `json:"payment_status,omitempty"`
	DiscountAmount  float64     `json:"discount_amount,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
}
