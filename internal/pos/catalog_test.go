package pos

import (
	"testing"

	"github.com/thuysan/seapos/internal/models"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: "1", Code: "CH01", Name: "Cá hồi Na Uy", CategoryID: "fish", UnitType: models.UnitKg},
		{ID: "2", Code: "CU02", Name: "Cua hoàng đế", CategoryID: "crab", UnitType: models.UnitPiece},
		{ID: "3", Code: "TO03", Name: "Tôm sú", CategoryID: "shrimp", UnitType: models.UnitKg},
	}
}

func TestFilterBySearch(t *testing.T) {
	c := testCatalog()
	if got := c.Filter("cá hồi", ""); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("name search failed: %+v", got)
	}
	if got := c.Filter("cu02", ""); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("code search should be case-insensitive: %+v", got)
	}
	if got := c.Filter("", ""); len(got) != 3 {
		t.Fatalf("empty search should keep everything: %d", len(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	c := testCatalog()
	if got := c.Filter("", "crab"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("category filter failed: %+v", got)
	}
	if got := c.Filter("tôm", "shrimp"); len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("combined filter failed: %+v", got)
	}
	if got := c.Filter("tôm", "crab"); len(got) != 0 {
		t.Fatalf("filters must both match: %+v", got)
	}
}

func TestFindByID(t *testing.T) {
	c := testCatalog()
	if p, ok := c.FindByID("2"); !ok || p.Name != "Cua hoàng đế" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := c.FindByID("missing"); ok {
		t.Fatal("missing ID should not resolve")
	}
}
