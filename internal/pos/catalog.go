// Package pos holds the point-of-sale domain core: the catalog snapshot, the
// multi-select picker state, the cart and its totals, and the order draft.
// Everything here is pure in-memory computation; the api package owns the
// network and the cli package owns the screen.
package pos

import (
	"strings"

	"github.com/thuysan/seapos/internal/models"
)

// Catalog is the product snapshot fetched at screen load. It is treated as
// immutable; a refresh replaces the whole slice.
type Catalog []models.Product

// Filter narrows the snapshot the way the picker does: case-insensitive
// substring match on name or code, plus optional category equality. It never
// re-fetches; filtering is over the already-loaded array.
func (c Catalog) Filter(search, categoryID string) Catalog {
	q := strings.ToLower(strings.TrimSpace(search))
	var out Catalog
	for _, p := range c {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Code), q) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindByID resolves a product against the snapshot.
func (c Catalog) FindByID(id string) (models.Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
