package pos

import "github.com/thuysan/seapos/internal/models"

// defaultKgWeight is the starting weight for weight-based products. It is an
// arbitrary value the cashier is expected to correct after weighing.
const defaultKgWeight = 0.5

// Entry is one picked product in the selection overlay, before it becomes a
// cart line.
type Entry struct {
	Product  models.Product
	Quantity float64
	Weight   float64
	Note     string
}

// Selection is the transient multi-pick state of the product chooser: one
// canonical ordered map from product ID to entry. Toggling preserves pick
// order; re-toggling a picked product removes it.
type Selection struct {
	order []string
	items map[string]*Entry
}

func NewSelection() *Selection {
	return &Selection{items: make(map[string]*Entry)}
}

func (s *Selection) Len() int { return len(s.order) }

// Entries returns the picked entries in pick order.
func (s *Selection) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// Has reports whether the product is currently picked.
func (s *Selection) Has(productID string) bool {
	_, ok := s.items[productID]
	return ok
}

// Toggle picks or unpicks a product. On pick, defaults follow the unit type:
// weight-based starts at 0.5 kg with no count; count-based starts at one unit
// with weight = avg unit weight (0 when the average is unknown).
func (s *Selection) Toggle(p models.Product) {
	if _, ok := s.items[p.ID]; ok {
		s.remove(p.ID)
		return
	}
	e := &Entry{Product: p}
	if p.WeightBased() {
		e.Quantity = 0
		e.Weight = defaultKgWeight
	} else {
		e.Quantity = 1
		e.Weight = p.AvgUnitWeight * e.Quantity
	}
	s.items[p.ID] = e
	s.order = append(s.order, p.ID)
}

func (s *Selection) remove(productID string) {
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// SetQuantity clamps the count to >= 0 and, when the product has a known
// average unit weight, recomputes weight = quantity x average. This
// overwrites any manual weight override; that is the documented behavior,
// not configurable.
func (s *Selection) SetQuantity(productID string, quantity float64) {
	e, ok := s.items[productID]
	if !ok {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	e.Quantity = quantity
	if e.Product.AvgUnitWeight > 0 {
		e.Weight = quantity * e.Product.AvgUnitWeight
	}
}

// SetWeight clamps the weight to >= 0 independent of quantity.
func (s *Selection) SetWeight(productID string, weight float64) {
	e, ok := s.items[productID]
	if !ok {
		return
	}
	if weight < 0 {
		weight = 0
	}
	e.Weight = weight
}

// SetNote replaces the free-text note. No validation.
func (s *Selection) SetNote(productID, note string) {
	if e, ok := s.items[productID]; ok {
		e.Note = note
	}
}

// Clear empties the selection, e.g. after the picked products were added to
// the cart or the overlay was dismissed.
func (s *Selection) Clear() {
	s.order = nil
	s.items = make(map[string]*Entry)
}
