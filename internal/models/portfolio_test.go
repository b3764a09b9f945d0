package models

import "testing"

func TestUpsertHoldingMerge(t *testing.T) {
	p := &Portfolio{ID: "u1"}

	p.UpsertHolding("aapl", "Apple", 10, 100)
	if len(p.Holdings) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(p.Holdings))
	}
	h := p.Holdings[0]
	if h.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want normalized AAPL", h.Symbol)
	}
	if h.CurrentPrice != 100 {
		t.Errorf("new holding price = %v, want seeded at cost", h.CurrentPrice)
	}

	// Merge re-weights the average cost across the combined position.
	p.UpsertHolding("AAPL", "Apple", 30, 200)
	h = p.Holdings[0]
	if len(p.Holdings) != 1 {
		t.Fatalf("merge must not add a second position")
	}
	if h.Quantity != 40 {
		t.Errorf("quantity = %v, want 40", h.Quantity)
	}
	if h.AvgCost != 175 { // (10*100 + 30*200) / 40
		t.Errorf("avg cost = %v, want 175", h.AvgCost)
	}
}

func TestUpsertHoldingZeroQuantityMerge(t *testing.T) {
	p := &Portfolio{ID: "u1"}
	p.UpsertHolding("AAPL", "Apple", 0, 100)
	p.UpsertHolding("AAPL", "Apple", 0, 200)

	// Zero combined quantity must not divide by zero; cost basis stays put.
	if got := p.Holdings[0].AvgCost; got != 100 {
		t.Errorf("avg cost = %v, want unchanged 100", got)
	}
}

func TestRemoveHolding(t *testing.T) {
	p := &Portfolio{ID: "u1"}
	p.UpsertHolding("AAPL", "Apple", 10, 100)
	p.UpsertHolding("MSFT", "Microsoft", 5, 200)

	if !p.RemoveHolding(" aapl ") {
		t.Error("expected removal of normalized symbol to succeed")
	}
	if p.RemoveHolding("AAPL") {
		t.Error("second removal must report false")
	}
	if len(p.Holdings) != 1 || p.Holdings[0].Symbol != "MSFT" {
		t.Errorf("remaining holdings = %+v", p.Holdings)
	}
}

func TestEffectivePrice(t *testing.T) {
	priced := Holding{AvgCost: 100, CurrentPrice: 150}
	if got := priced.EffectivePrice(); got != 150 {
		t.Errorf("priced = %v, want 150", got)
	}

	unpriced := Holding{AvgCost: 100}
	if got := unpriced.EffectivePrice(); got != 100 {
		t.Errorf("unpriced = %v, want cost basis 100", got)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	for input, want := range map[string]string{
		"aapl":   "AAPL",
		" MSFT ": "MSFT",
		"":       "",
	} {
		if got := NormalizeSymbol(input); got != want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", input, got, want)
		}
	}
}
