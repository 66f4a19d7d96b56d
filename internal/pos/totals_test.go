package pos

import "testing"

func TestComputeTotalsWorkedExample(t *testing.T) {
	// cart = [{1.5 kg x 200000}, {0.5 kg x 450000}], discount 50000
	lines := []Line{
		{Weight: 1.5, UnitPrice: 200000},
		{Weight: 0.5, UnitPrice: 450000},
	}
	got := ComputeTotals(lines, 50000)
	if got.Subtotal != 525000 {
		t.Fatalf("subtotal = %v, want 525000", got.Subtotal)
	}
	if got.Total != 475000 {
		t.Fatalf("total = %v, want 475000", got.Total)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := []Line{{Weight: 1, UnitPrice: 100}, {Weight: 2, UnitPrice: 250}, {Weight: 0.3, UnitPrice: 90000}}
	b := []Line{a[2], a[0], a[1]}
	if ComputeTotals(a, 0).Subtotal != ComputeTotals(b, 0).Subtotal {
		t.Fatal("subtotal must be independent of line order")
	}
}

func TestComputeTotalsOverDiscountGoesNegative(t *testing.T) {
	// Documented: the calculator never clamps; only draft validation refuses it.
	got := ComputeTotals([]Line{{Weight: 1, UnitPrice: 1000}}, 5000)
	if got.Total != -4000 {
		t.Fatalf("total = %v, want -4000", got.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil, 0)
	if got.Subtotal != 0 || got.Total != 0 {
		t.Fatalf("empty cart totals should be zero: %+v", got)
	}
}
