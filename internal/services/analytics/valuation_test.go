package analytics

import (
	"math"
	"testing"

	"github.com/bobmcallan/stockpulse/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRevalue(t *testing.T) {
	tests := []struct {
		name     string
		holdings []models.Holding
		want     models.ValuationTotals
	}{
		{
			name:     "empty holdings",
			holdings: nil,
			want:     models.ValuationTotals{},
		},
		{
			name: "single gaining position",
			holdings: []models.Holding{
				{Symbol: "AAPL", Quantity: 10, AvgCost: 100, CurrentPrice: 150},
			},
			want: models.ValuationTotals{
				TotalCost:        1000,
				TotalValue:       1500,
				TotalReturn:      500,
				ReturnPercentage: 50,
			},
		},
		{
			name: "mixed gain and loss",
			holdings: []models.Holding{
				{Symbol: "AAPL", Quantity: 10, AvgCost: 100, CurrentPrice: 150},
				{Symbol: "JPM", Quantity: 10, AvgCost: 100, CurrentPrice: 50},
			},
			want: models.ValuationTotals{
				TotalCost:        2000,
				TotalValue:       2000,
				TotalReturn:      0,
				ReturnPercentage: 0,
			},
		},
		{
			name: "unpriced holding valued at cost",
			holdings: []models.Holding{
				{Symbol: "XYZ", Quantity: 10, AvgCost: 50, CurrentPrice: 0},
			},
			want: models.ValuationTotals{
				TotalCost:        500,
				TotalValue:       500,
				TotalReturn:      0,
				ReturnPercentage: 0,
			},
		},
		{
			name: "zero cost basis yields zero return percentage",
			holdings: []models.Holding{
				{Symbol: "GIFT", Quantity: 10, AvgCost: 0, CurrentPrice: 20},
			},
			want: models.ValuationTotals{
				TotalCost:        0,
				TotalValue:       200,
				TotalReturn:      200,
				ReturnPercentage: 0,
			},
		},
		{
			name: "fully sold position contributes nothing",
			holdings: []models.Holding{
				{Symbol: "OLD", Quantity: 0, AvgCost: 100, CurrentPrice: 200},
			},
			want: models.ValuationTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Revalue(tt.holdings)
			if !almostEqual(got.TotalCost, tt.want.TotalCost) ||
				!almostEqual(got.TotalValue, tt.want.TotalValue) ||
				!almostEqual(got.TotalReturn, tt.want.TotalReturn) ||
				!almostEqual(got.ReturnPercentage, tt.want.ReturnPercentage) {
				t.Errorf("Revalue() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRevalueNoFloatDrift(t *testing.T) {
	// 0.1+0.2 style inputs must not accumulate binary float error.
	holdings := []models.Holding{
		{Symbol: "A", Quantity: 3, AvgCost: 0.1, CurrentPrice: 0.1},
		{Symbol: "B", Quantity: 3, AvgCost: 0.2, CurrentPrice: 0.2},
	}

	got := Revalue(holdings)
	if got.TotalCost != 0.9 {
		t.Errorf("TotalCost = %v, want exactly 0.9", got.TotalCost)
	}
	if got.TotalReturn != 0 {
		t.Errorf("TotalReturn = %v, want exactly 0", got.TotalReturn)
	}
}
