package pos

import (
	"testing"

	"github.com/thuysan/seapos/internal/models"
)

func draftWithLine(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft()
	s := NewSelection()
	s.Toggle(kgProduct("p1", "Cá hồi", 200000))
	s.SetWeight("p1", 1.5)
	if err := d.Cart.AddSelection(s); err != nil {
		t.Fatalf("add selection: %v", err)
	}
	d.CustomerPhone = "0901234567"
	return d
}

func TestValidateHappyPath(t *testing.T) {
	d := draftWithLine(t)
	if v := d.Validate(); !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidateMissingPhone(t *testing.T) {
	d := draftWithLine(t)
	d.CustomerPhone = "   "
	v := d.Validate()
	if v["customer_phone"] != "required" {
		t.Fatalf("expected phone violation, got %v", v)
	}
}

func TestValidateEmptyCart(t *testing.T) {
	d := NewDraft()
	d.CustomerPhone = "0901234567"
	v := d.Validate()
	if v["items"] != "required" {
		t.Fatalf("expected items violation, got %v", v)
	}
}

func TestValidateZeroWeightLine(t *testing.T) {
	d := draftWithLine(t)
	d.Cart.UpdateWeight(0, 0)
	v := d.Validate()
	if v["items"] != "must_be_positive" {
		t.Fatalf("expected weight violation, got %v", v)
	}
}

func TestValidateDiscount(t *testing.T) {
	d := draftWithLine(t) // subtotal 300000
	d.Discount = -1
	if v := d.Validate(); v["discount_amount"] != "must_not_be_negative" {
		t.Fatalf("expected negative discount violation, got %v", v)
	}
	d.Discount = 300001
	if v := d.Validate(); v["discount_amount"] != "exceeds_maximum" {
		t.Fatalf("expected over-discount violation, got %v", v)
	}
	d.Discount = 300000
	if v := d.Validate(); !v.Empty() {
		t.Fatalf("discount equal to subtotal should pass, got %v", v)
	}
}

func TestDraftTotals(t *testing.T) {
	d := draftWithLine(t)
	d.Discount = 50000
	totals := d.Totals()
	if totals.Subtotal != 300000 || totals.Total != 250000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestPayload(t *testing.T) {
	d := draftWithLine(t)
	d.CustomerName = "Chị Lan"
	d.Discount = 10000
	d.Notes = "giao trước 5h"
	p := d.Payload()
	if p.CustomerPhone != "0901234567" || p.CustomerName != "Chị Lan" {
		t.Fatalf("customer fields lost: %+v", p)
	}
	if p.DiscountAmount != 10000 || p.Notes != "giao trước 5h" {
		t.Fatalf("order fields lost: %+v", p)
	}
	if len(p.Items) != 1 || p.Items[0].Weight != 1.5 {
		t.Fatalf("items lost: %+v", p.Items)
	}
	if p.PaymentMethod != models.PayCash || p.PaymentStatus != models.PaymentPaid {
		t.Fatalf("payment defaults lost: %+v", p)
	}
}

func TestResetClearsEverythingAndRotatesKey(t *testing.T) {
	d := draftWithLine(t)
	d.CustomerName = "Anh Minh"
	d.CustomerAddress = "12 Trần Phú"
	d.Discount = 20000
	d.Notes = "x"
	key := d.IdempotencyKey
	if key == "" {
		t.Fatal("draft must start with an idempotency key")
	}

	d.Reset()
	if d.CustomerPhone != "" || d.CustomerName != "" || d.CustomerAddress != "" {
		t.Fatalf("customer fields not cleared: %+v", d)
	}
	if d.Discount != 0 || d.Notes != "" || d.Cart.Len() != 0 {
		t.Fatalf("order fields not cleared: %+v", d)
	}
	if d.IdempotencyKey == key {
		t.Fatal("reset must rotate the idempotency key")
	}
}
