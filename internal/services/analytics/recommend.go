package analytics

// Recommendation messages for the portfolio-analysis rules. All rules that
// match fire independently, in this fixed order.
const (
	msgEmptyPortfolio      = "Start by adding some holdings to your portfolio"
	msgDiversify           = "Increase diversification by adding stocks from different sectors"
	msgConcentrationRisk   = "Consider adding more holdings to reduce concentration risk"
	msgTechOverweight      = "High tech allocation detected. Consider balancing with defensive sectors"
	msgNegativePerformance = "Portfolio showing negative returns. Review underperforming stocks"
)

// recommendationInputs carries the already-derived figures the rules read.
type recommendationInputs struct {
	diversificationScore int
	numHoldings          int
	techFraction         float64
	avgReturn            float64
	hasReturns           bool
}

// buildRecommendations evaluates the analysis rules. Every matching rule
// emits its message — this is not a first-match table.
func buildRecommendations(in recommendationInputs) []string {
	var recs []string

	if in.diversificationScore < 50 {
		recs = append(recs, msgDiversify)
	}
	if in.numHoldings < 5 {
		recs = append(recs, msgConcentrationRisk)
	}
	if in.techFraction > 0.5 {
		recs = append(recs, msgTechOverweight)
	}
	if in.hasReturns && in.avgReturn < -5 {
		recs = append(recs, msgNegativePerformance)
	}

	return recs
}
