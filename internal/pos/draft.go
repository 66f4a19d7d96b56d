package pos

import (
	"github.com/google/uuid"

	"github.com/thuysan/seapos/internal/models"
	"github.com/thuysan/seapos/validation"
)

// Draft is the client-held, not-yet-submitted order: customer fields, payment
// metadata, discount, notes and the cart. The backend assigns order code,
// timestamps and computed amounts on acceptance. The idempotency key lets the
// backend drop an accidental duplicate of the same draft.
type Draft struct {
	CustomerPhone   string
	CustomerName    string
	CustomerAddress string
	PaymentMethod   string
	PaymentStatus   string
	Discount        float64
	Notes           string
	Cart            *Cart
	IdempotencyKey  string
}

// NewDraft starts an empty order at the counter defaults: cash, paid.
func NewDraft() *Draft {
	return &Draft{
		PaymentMethod:  models.PayCash,
		PaymentStatus:  models.PaymentPaid,
		Cart:           NewCart(),
		IdempotencyKey: uuid.NewString(),
	}
}

// Totals recomputes subtotal and grand total from the current cart state.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Cart.Lines(), d.Discount)
}

// Validate runs the pre-submission checks. No network call may be made while
// this returns violations: customer phone is required, the cart must not be
// empty, every line needs a positive weight, and the discount may neither be
// negative nor exceed the subtotal.
func (d *Draft) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("customer_phone", d.CustomerPhone, v)
	validation.NotEmptySlice("items", d.Cart.Lines(), v)
	for _, l := range d.Cart.Lines() {
		if l.Weight <= 0 {
			v["items"] = "must_be_positive"
			break
		}
	}
	validation.NonNegativeFloat("discount_amount", d.Discount, v)
	if _, ok := v["discount_amount"]; !ok {
		validation.AtMostFloat("discount_amount", d.Discount, d.Totals().Subtotal, v)
	}
	return v
}

// Payload builds the order creation request from the draft.
func (d *Draft) Payload() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   d.PaymentStatus,
		DiscountAmount:  d.Discount,
		Notes:           d.Notes,
		Items:           d.Cart.Items(),
	}
}

// Reset clears the draft after a successful submission or an explicit cancel:
// cart emptied, customer fields and discount back to zero, payment back to
// defaults, and a fresh idempotency key for the next order.
func (d *Draft) Reset() {
	d.CustomerPhone = ""
	d.CustomerName = ""
	d.CustomerAddress = ""
	d.PaymentMethod = models.PayCash
	d.PaymentStatus = models.PaymentPaid
	d.Discount = 0
	d.Notes = ""
	d.Cart.Clear()
	d.IdempotencyKey = uuid.NewString()
}
