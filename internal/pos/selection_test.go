package pos

import (
	"math"
	"testing"

	"github.com/thuysan/seapos/internal/models"
)

func kgProduct(id, name string, price float64) models.Product {
	return models.Product{ID: id, Code: id, Name: name, UnitType: models.UnitKg, CurrentPrice: price}
}

func pieceProduct(id, name string, price, avgWeight float64) models.Product {
	return models.Product{ID: id, Code: id, Name: name, UnitType: models.UnitPiece, CurrentPrice: price, AvgUnitWeight: avgWeight}
}

func TestToggleDefaults(t *testing.T) {
	s := NewSelection()
	s.Toggle(kgProduct("p1", "Cá hồi", 200000))
	s.Toggle(pieceProduct("p2", "Cua", 450000, 0.05))
	s.Toggle(pieceProduct("p3", "Hàu", 15000, 0)) // avg weight unknown

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Weight != 0.5 || entries[0].Quantity != 0 {
		t.Fatalf("kg defaults wrong: %+v", entries[0])
	}
	if entries[1].Quantity != 1 || entries[1].Weight != 0.05 {
		t.Fatalf("piece defaults wrong: %+v", entries[1])
	}
	if entries[2].Quantity != 1 || entries[2].Weight != 0 {
		t.Fatalf("unknown avg weight should default weight to 0: %+v", entries[2])
	}
}

func TestToggleRemoves(t *testing.T) {
	s := NewSelection()
	p := kgProduct("p1", "Tôm", 300000)
	s.Toggle(p)
	if !s.Has("p1") {
		t.Fatal("expected p1 selected")
	}
	s.Toggle(p)
	if s.Has("p1") || s.Len() != 0 {
		t.Fatal("second toggle should unpick")
	}
}

func TestSelectionOrderPreserved(t *testing.T) {
	s := NewSelection()
	s.Toggle(kgProduct("a", "A", 1))
	s.Toggle(kgProduct("b", "B", 1))
	s.Toggle(kgProduct("c", "C", 1))
	s.Toggle(kgProduct("b", "B", 1)) // unpick the middle one

	entries := s.Entries()
	if len(entries) != 2 || entries[0].Product.ID != "a" || entries[1].Product.ID != "c" {
		t.Fatalf("pick order not preserved: %+v", entries)
	}
}

func TestSetQuantityRecomputesWeight(t *testing.T) {
	s := NewSelection()
	s.Toggle(pieceProduct("p2", "Cua", 450000, 0.05))

	s.SetQuantity("p2", 3)
	if got := s.Entries()[0].Weight; math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("expected weight 0.15, got %v", got)
	}

	// Manual override, then a quantity edit overwrites it again.
	s.SetWeight("p2", 0.7)
	s.SetQuantity("p2", 4)
	if got := s.Entries()[0].Weight; got != 4*0.05 {
		t.Fatalf("quantity edit must overwrite manual weight, got %v", got)
	}

	// Negative quantity clamps to zero.
	s.SetQuantity("p2", -5)
	e := s.Entries()[0]
	if e.Quantity != 0 || e.Weight != 0 {
		t.Fatalf("expected clamp to 0, got %+v", e)
	}
}

func TestSetWeightClampsAndNote(t *testing.T) {
	s := NewSelection()
	s.Toggle(kgProduct("p1", "Mực", 250000))
	s.SetWeight("p1", -1)
	if got := s.Entries()[0].Weight; got != 0 {
		t.Fatalf("expected weight clamped to 0, got %v", got)
	}
	s.SetNote("p1", "làm sạch")
	if got := s.Entries()[0].Note; got != "làm sạch" {
		t.Fatalf("note not applied: %q", got)
	}
	// edits to unknown products are ignored
	s.SetWeight("ghost", 5)
	s.SetQuantity("ghost", 5)
	s.SetNote("ghost", "x")
}

func TestClear(t *testing.T) {
	s := NewSelection()
	s.Toggle(kgProduct("p1", "Sò", 90000))
	s.Clear()
	if s.Len() != 0 {
		t.Fatal("expected empty selection after clear")
	}
}
