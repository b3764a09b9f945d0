package analytics

import (
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/shopspring/decimal"
)

// Revalue recomputes the derived valuation totals from a holdings list.
// Summation runs in decimal arithmetic so money fields don't accumulate
// floating-point drift. A holding without a current price is valued at cost.
// ReturnPercentage is exactly 0 when total cost is 0 — an empty or fully-sold
// portfolio is a valid terminal state, not an error.
func Revalue(holdings []models.Holding) models.ValuationTotals {
	totalCost := decimal.Zero
	totalValue := decimal.Zero

	for _, h := range holdings {
		qty := decimal.NewFromFloat(h.Quantity)
		totalCost = totalCost.Add(qty.Mul(decimal.NewFromFloat(h.AvgCost)))
		totalValue = totalValue.Add(qty.Mul(decimal.NewFromFloat(h.EffectivePrice())))
	}

	totalReturn := totalValue.Sub(totalCost)

	returnPct := decimal.Zero
	if totalCost.IsPositive() {
		returnPct = totalReturn.Div(totalCost).Mul(decimal.NewFromInt(100))
	}

	return models.ValuationTotals{
		TotalCost:        totalCost.InexactFloat64(),
		TotalValue:       totalValue.InexactFloat64(),
		TotalReturn:      totalReturn.InexactFloat64(),
		ReturnPercentage: returnPct.InexactFloat64(),
	}
}
