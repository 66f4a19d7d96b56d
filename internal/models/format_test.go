package models

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:       "0 ₫",
		525:     "525 ₫",
		525000:  "525.000 ₫",
		1234567: "1.234.567 ₫",
		-50000:  "-50.000 ₫",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatWeight(t *testing.T) {
	if got := FormatWeight(1.5); got != "1.50 kg" {
		t.Fatalf("unexpected weight format: %q", got)
	}
}

func TestUnitPredicates(t *testing.T) {
	if !(Product{UnitType: UnitKg}).WeightBased() {
		t.Fatal("kg should be weight based")
	}
	if (Product{UnitType: UnitKg}).CountBased() {
		t.Fatal("kg should not be count based")
	}
	if !(Product{UnitType: UnitPiece}).CountBased() || !(Product{UnitType: UnitBox}).CountBased() {
		t.Fatal("piece and box should be count based")
	}
}
