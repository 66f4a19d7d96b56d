package pos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thuysan/seapos/internal/models"
)

// ErrEmptySelection is returned when materializing a selection with nothing
// picked; the cart is left untouched.
var ErrEmptySelection = errors.New("selection is empty")

// InvalidWeightError names the products whose weight is not positive yet.
type InvalidWeightError struct {
	Names []string
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("missing weight for: %s", strings.Join(e.Names, ", "))
}

// Line is one product entry of the in-progress order. UnitPrice is snapshot
// at add time; later catalog price changes never touch lines already in the
// cart. Quantity is nil for weight-based products.
type Line struct {
	ProductID string
	Product   models.Product
	Quantity  *float64
	Weight    float64
	UnitPrice float64
	Note      string
}

// Subtotal is the line amount: billable weight times the price snapshot.
func (l Line) Subtotal() float64 { return l.Weight * l.UnitPrice }

// Cart is the ordered list of lines carried until order submission.
type Cart struct {
	lines []Line
}

func NewCart() *Cart { return &Cart{} }

// NewCartFromLines rebuilds a cart from persisted lines (held drafts).
func NewCartFromLines(lines []Line) *Cart {
	return &Cart{lines: lines}
}

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) Lines() []Line { return c.lines }

// AddSelection materializes every picked entry into a cart line. It rejects
// an empty selection and any entry without a positive weight, in both cases
// without mutating the cart. On success the caller clears the selection.
func (c *Cart) AddSelection(sel *Selection) error {
	if sel == nil || sel.Len() == 0 {
		return ErrEmptySelection
	}
	entries := sel.Entries()
	var invalid []string
	for _, e := range entries {
		if e.Weight <= 0 {
			invalid = append(invalid, e.Product.Name)
		}
	}
	if len(invalid) > 0 {
		return &InvalidWeightError{Names: invalid}
	}
	for _, e := range entries {
		line := Line{
			ProductID: e.Product.ID,
			Product:   e.Product,
			Weight:    e.Weight,
			UnitPrice: e.Product.CurrentPrice,
			Note:      e.Note,
		}
		if e.Product.CountBased() {
			q := e.Quantity
			line.Quantity = &q
		}
		c.lines = append(c.lines, line)
	}
	return nil
}

// AddProduct is the single-tap variant: the product goes straight into the
// cart with the same defaults the picker uses, except the starting weight for
// weight-based products is floored at 0.1 kg so the new line is immediately
// submittable.
func (c *Cart) AddProduct(p models.Product) {
	line := Line{ProductID: p.ID, Product: p, UnitPrice: p.CurrentPrice}
	if p.WeightBased() {
		line.Weight = defaultKgWeight
		if line.Weight < 0.1 {
			line.Weight = 0.1
		}
	} else {
		q := 1.0
		line.Quantity = &q
		line.Weight = p.AvgUnitWeight
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity clamps to >= 0 and recomputes weight from the product's
// average unit weight when known, overwriting any manual weight. Weight-based
// lines carry no quantity, so the edit is ignored for them and the payload
// keeps quantity omitted.
func (c *Cart) UpdateQuantity(index int, quantity float64) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	l := &c.lines[index]
	if !l.Product.CountBased() {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	q := quantity
	l.Quantity = &q
	if l.Product.AvgUnitWeight > 0 {
		l.Weight = quantity * l.Product.AvgUnitWeight
	}
}

// UpdateWeight clamps to >= 0 independent of quantity.
func (c *Cart) UpdateWeight(index int, weight float64) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	if weight < 0 {
		weight = 0
	}
	c.lines[index].Weight = weight
}

// UpdateNote replaces the line note.
func (c *Cart) UpdateNote(index int, note string) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines[index].Note = note
}

// Remove deletes one line by position.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// Items converts the cart into order items for submission. Quantity stays
// omitted for weight-based lines.
func (c *Cart) Items() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			SeafoodID: l.ProductID,
			Quantity:  l.Quantity,
			Weight:    l.Weight,
			UnitPrice: l.UnitPrice,
			Notes:     l.Note,
		})
	}
	return items
}
