// Package models defines data structures for StockPulse
package models

import (
	"strings"
	"time"
)

// RiskLevel is the coarse qualitative risk classification of a portfolio.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
	RiskUnset  RiskLevel = ""
)

// Holding represents a single ticker position with quantity and cost basis.
// Quantity may be zero (fully sold) — such holdings contribute nothing to
// valuation but remain in the list.
type Holding struct {
	Symbol       string    `json:"symbol"` // canonical uppercase ticker
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	AvgCost      float64   `json:"avg_cost"` // cost basis per unit
	CurrentPrice float64   `json:"current_price"`
	LastUpdated  time.Time `json:"last_updated"`
}

// EffectivePrice returns the price used for valuation: the current price when
// set, otherwise the cost basis. An un-priced holding is valued at cost so it
// never produces a spurious gain or loss signal.
func (h Holding) EffectivePrice() float64 {
	if h.CurrentPrice > 0 {
		return h.CurrentPrice
	}
	return h.AvgCost
}

// ValuationTotals holds the derived valuation fields of a portfolio.
type ValuationTotals struct {
	TotalCost        float64 `json:"total_cost"`
	TotalValue       float64 `json:"total_value"`
	TotalReturn      float64 `json:"total_return"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// AnalyticsSnapshot is the persisted result of the most recent analysis run.
// It is overwritten wholesale on each run, never partially merged.
type AnalyticsSnapshot struct {
	DiversificationScore int       `json:"diversification_score"`
	RiskLevel            RiskLevel `json:"risk_level"`
	Recommendations      []string  `json:"recommendations"`
	LastAnalyzed         time.Time `json:"last_analyzed"`
}

// Portfolio represents a user's stock portfolio. Holdings are keyed by unique
// symbol; inserting an existing symbol merges quantities and re-weights the
// average cost. The four valuation fields are derived from the holdings list
// and recomputed before every persistence or response.
type Portfolio struct {
	ID          string    `json:"id"` // owner user ID, one portfolio per user
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Holdings    []Holding `json:"holdings"`
	IsPublic    bool      `json:"is_public"`

	TotalCost        float64 `json:"total_cost"`
	TotalValue       float64 `json:"total_value"`
	TotalReturn      float64 `json:"total_return"`
	ReturnPercentage float64 `json:"return_percentage"`

	Analytics AnalyticsSnapshot `json:"analytics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindHolding returns the index of the holding with the given symbol, or -1.
func (p *Portfolio) FindHolding(symbol string) int {
	for i := range p.Holdings {
		if p.Holdings[i].Symbol == symbol {
			return i
		}
	}
	return -1
}

// UpsertHolding adds a holding or merges it into an existing position with the
// same symbol. On merge the quantity is added and the average cost re-weighted
// across the combined position.
func (p *Portfolio) UpsertHolding(symbol, name string, quantity, avgCost float64) {
	symbol = NormalizeSymbol(symbol)
	if i := p.FindHolding(symbol); i >= 0 {
		h := &p.Holdings[i]
		combined := h.Quantity + quantity
		if combined > 0 {
			h.AvgCost = (h.AvgCost*h.Quantity + avgCost*quantity) / combined
		}
		h.Quantity = combined
		h.LastUpdated = time.Now()
		return
	}
	p.Holdings = append(p.Holdings, Holding{
		Symbol:       symbol,
		Name:         name,
		Quantity:     quantity,
		AvgCost:      avgCost,
		CurrentPrice: avgCost,
		LastUpdated:  time.Now(),
	})
}

// RemoveHolding drops the holding with the given symbol. Returns true if a
// holding was removed.
func (p *Portfolio) RemoveHolding(symbol string) bool {
	symbol = NormalizeSymbol(symbol)
	i := p.FindHolding(symbol)
	if i < 0 {
		return false
	}
	p.Holdings = append(p.Holdings[:i], p.Holdings[i+1:]...)
	return true
}

// ApplyTotals writes recomputed valuation totals onto the portfolio.
func (p *Portfolio) ApplyTotals(t ValuationTotals) {
	p.TotalCost = t.TotalCost
	p.TotalValue = t.TotalValue
	p.TotalReturn = t.TotalReturn
	p.ReturnPercentage = t.ReturnPercentage
}

// NormalizeSymbol canonicalizes a ticker symbol to uppercase with no
// surrounding whitespace.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
