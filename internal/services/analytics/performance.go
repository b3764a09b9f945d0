package analytics

import (
	"sort"

	"github.com/bobmcallan/stockpulse/internal/models"
)

// holdingReturns computes the simple return percentage for each holding with
// a usable cost basis. Holdings with AvgCost == 0 are excluded — a zero basis
// has no defined return and a sentinel would distort the ranking.
func holdingReturns(holdings []models.Holding) []models.HoldingPerformance {
	perf := make([]models.HoldingPerformance, 0, len(holdings))
	for _, h := range holdings {
		if h.AvgCost == 0 {
			continue
		}
		perf = append(perf, models.HoldingPerformance{
			Symbol:    h.Symbol,
			ReturnPct: (h.CurrentPrice - h.AvgCost) / h.AvgCost * 100,
		})
	}
	return perf
}

// RankPerformance sorts holdings by return percentage and returns the best
// and worst performers, at most three each. Bottom is ordered worst-first.
// With fewer than three rankable holdings the lists may overlap or be short.
func RankPerformance(holdings []models.Holding) (top, bottom []models.HoldingPerformance) {
	perf := holdingReturns(holdings)

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].ReturnPct > perf[j].ReturnPct
	})

	n := len(perf)
	topN := n
	if topN > 3 {
		topN = 3
	}
	top = append(top, perf[:topN]...)

	bottomN := n
	if bottomN > 3 {
		bottomN = 3
	}
	for i := 0; i < bottomN; i++ {
		bottom = append(bottom, perf[n-1-i])
	}
	return top, bottom
}

// meanReturn is the average per-holding return percentage, 0 when no holding
// is rankable.
func meanReturn(holdings []models.Holding) (float64, bool) {
	perf := holdingReturns(holdings)
	if len(perf) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, p := range perf {
		sum += p.ReturnPct
	}
	return sum / float64(len(perf)), true
}
