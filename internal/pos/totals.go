package pos

// Totals is a pure projection of the cart and the discount field. It is
// recomputed after every edit and never stored.
type Totals struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// ComputeTotals reduces the cart: subtotal is the sum of weight x unit price
// over all lines, total is subtotal minus discount. No clamping happens here;
// a discount larger than the subtotal yields a negative total and it is the
// draft validation that refuses to submit it.
func ComputeTotals(lines []Line, discount float64) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}
