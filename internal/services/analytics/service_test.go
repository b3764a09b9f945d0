package analytics

import (
	"testing"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger())
}

func holding(symbol string, qty, cost, price float64) models.Holding {
	return models.Holding{Symbol: symbol, Name: symbol, Quantity: qty, AvgCost: cost, CurrentPrice: price}
}

func TestAnalyzeEmptyPortfolio(t *testing.T) {
	svc := newTestService()

	for _, p := range []*models.Portfolio{
		nil,
		{ID: "u1"},
		{ID: "u1", Holdings: []models.Holding{}},
	} {
		analysis := svc.Analyze(p)

		if analysis.DiversificationScore != 0 {
			t.Errorf("expected score 0, got %d", analysis.DiversificationScore)
		}
		if analysis.RiskLevel != models.RiskMedium {
			t.Errorf("expected medium risk, got %s", analysis.RiskLevel)
		}
		if len(analysis.Recommendations) != 1 || analysis.Recommendations[0] != msgEmptyPortfolio {
			t.Errorf("expected single starter recommendation, got %v", analysis.Recommendations)
		}
	}
}

func TestAnalyzeDiversificationScore(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		holdings []models.Holding
		want     int
	}{
		{
			name:     "one sector one holding",
			holdings: []models.Holding{holding("AAPL", 10, 100, 100)},
			want:     25, // 1*20 + 1*5
		},
		{
			name: "two sectors three holdings",
			holdings: []models.Holding{
				holding("AAPL", 10, 100, 100),
				holding("MSFT", 5, 200, 200),
				holding("JPM", 5, 150, 150),
			},
			want: 55, // 2*20 + 3*5
		},
		{
			name: "score capped at 100",
			holdings: []models.Holding{
				holding("AAPL", 1, 10, 10), holding("JPM", 1, 10, 10),
				holding("JNJ", 1, 10, 10), holding("PG", 1, 10, 10),
				holding("XOM", 1, 10, 10), holding("NEE", 1, 10, 10),
				holding("ZZZZ", 1, 10, 10), holding("YYYY", 1, 10, 10),
				holding("XXXX", 1, 10, 10), holding("WWWW", 1, 10, 10),
				holding("VVVV", 1, 10, 10), holding("UUUU", 1, 10, 10),
			},
			want: 100, // 7*20 + 10*5 = 190, capped
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: tt.holdings})
			if analysis.DiversificationScore != tt.want {
				t.Errorf("score = %d, want %d", analysis.DiversificationScore, tt.want)
			}
		})
	}
}

func TestAnalyzeScoreMonotoneInSectors(t *testing.T) {
	svc := newTestService()

	// Adding a holding from a new sector must never lower the score.
	holdings := []models.Holding{holding("AAPL", 1, 10, 10)}
	prev := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: holdings}).DiversificationScore

	for _, sym := range []string{"JPM", "JNJ", "PG", "XOM", "NEE", "ZZZZ"} {
		holdings = append(holdings, holding(sym, 1, 10, 10))
		score := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: holdings}).DiversificationScore
		if score < prev {
			t.Fatalf("score dropped from %d to %d after adding %s", prev, score, sym)
		}
		prev = score
	}
}

func TestAnalyzeRiskLevel(t *testing.T) {
	svc := newTestService()

	manyDiverse := []models.Holding{
		holding("JPM", 1, 10, 10), holding("BAC", 1, 10, 10),
		holding("JNJ", 1, 10, 10), holding("UNH", 1, 10, 10),
		holding("PG", 1, 10, 10), holding("KO", 1, 10, 10),
		holding("XOM", 1, 10, 10), holding("CVX", 1, 10, 10),
		holding("NEE", 1, 10, 10), holding("DUK", 1, 10, 10),
		holding("AAPL", 1, 10, 10),
	}

	mediumMix := []models.Holding{
		holding("AAPL", 1, 10, 10), holding("MSFT", 1, 10, 10),
		holding("JPM", 1, 10, 10), holding("JNJ", 1, 10, 10),
		holding("PG", 1, 10, 10), holding("XOM", 1, 10, 10),
	}

	tests := []struct {
		name     string
		holdings []models.Holding
		want     models.RiskLevel
	}{
		{
			name:     "few holdings is high risk",
			holdings: []models.Holding{holding("JPM", 10, 100, 100), holding("JNJ", 10, 100, 100)},
			want:     models.RiskHigh,
		},
		{
			name: "tech heavy is high risk even with many holdings",
			holdings: append([]models.Holding{
				holding("AAPL", 100, 100, 100), // dominates value
			}, mediumMix[2:]...),
			want: models.RiskHigh,
		},
		{
			name:     "many diverse low-tech holdings is low risk",
			holdings: manyDiverse,
			want:     models.RiskLow,
		},
		{
			name:     "balanced mid-size portfolio is medium risk",
			holdings: mediumMix,
			want:     models.RiskMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: tt.holdings})
			if analysis.RiskLevel != tt.want {
				t.Errorf("risk = %s, want %s", analysis.RiskLevel, tt.want)
			}
		})
	}
}

func TestAnalyzeRecommendations(t *testing.T) {
	svc := newTestService()

	t.Run("concentrated tech portfolio triggers all structural rules", func(t *testing.T) {
		analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: []models.Holding{
			holding("AAPL", 10, 100, 100),
			holding("MSFT", 10, 100, 100),
		}})

		want := []string{msgDiversify, msgConcentrationRisk, msgTechOverweight}
		if len(analysis.Recommendations) != len(want) {
			t.Fatalf("got %v, want %v", analysis.Recommendations, want)
		}
		for i, msg := range want {
			if analysis.Recommendations[i] != msg {
				t.Errorf("recommendation[%d] = %q, want %q", i, analysis.Recommendations[i], msg)
			}
		}
	})

	t.Run("negative average return adds performance warning", func(t *testing.T) {
		analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: []models.Holding{
			holding("JPM", 10, 100, 80), // -20%
		}})

		found := false
		for _, msg := range analysis.Recommendations {
			if msg == msgNegativePerformance {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", msgNegativePerformance, analysis.Recommendations)
		}
	})

	t.Run("well diversified portfolio has no recommendations", func(t *testing.T) {
		analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: []models.Holding{
			holding("JPM", 1, 10, 11), holding("BAC", 1, 10, 11),
			holding("JNJ", 1, 10, 11), holding("PG", 1, 10, 11),
			holding("XOM", 1, 10, 11), holding("NEE", 1, 10, 11),
		}})

		if len(analysis.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", analysis.Recommendations)
		}
	})
}

func TestAnalyzeSectorAllocation(t *testing.T) {
	svc := newTestService()

	analysis := svc.Analyze(&models.Portfolio{ID: "u1", Holdings: []models.Holding{
		holding("AAPL", 10, 100, 150), // 1500 tech
		holding("MSFT", 5, 200, 300),  // 1500 tech
		holding("JPM", 10, 100, 100),  // 1000 finance
	}})

	if got := analysis.SectorAllocation[models.SectorTechnology]; got != 3000 {
		t.Errorf("tech allocation = %v, want 3000", got)
	}
	if got := analysis.SectorAllocation[models.SectorFinance]; got != 1000 {
		t.Errorf("finance allocation = %v, want 1000", got)
	}
}
