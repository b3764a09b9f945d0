package portfolio

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/stockpulse/internal/models"
)

// sectorColors keeps chart colors stable across renders.
var sectorColors = map[models.Sector]drawing.Color{
	models.SectorTechnology: drawing.ColorFromHex("2563eb"), // blue-600
	models.SectorFinance:    drawing.ColorFromHex("16a34a"), // green-600
	models.SectorHealthcare: drawing.ColorFromHex("dc2626"), // red-600
	models.SectorConsumer:   drawing.ColorFromHex("d97706"), // amber-600
	models.SectorEnergy:     drawing.ColorFromHex("7c3aed"), // violet-600
	models.SectorUtilities:  drawing.ColorFromHex("0891b2"), // cyan-600
	models.SectorOther:      drawing.ColorFromHex("9ca3af"), // gray-400
}

// RenderAllocationChart renders a PNG bar chart of sector allocation by
// current value. Returns raw PNG bytes.
func RenderAllocationChart(allocation map[models.Sector]float64) ([]byte, error) {
	if len(allocation) == 0 {
		return nil, fmt.Errorf("no sector allocation to chart")
	}

	sectors := make([]models.Sector, 0, len(allocation))
	for sector := range allocation {
		sectors = append(sectors, sector)
	}
	sort.Slice(sectors, func(i, j int) bool {
		if allocation[sectors[i]] == allocation[sectors[j]] {
			return sectors[i] < sectors[j]
		}
		return allocation[sectors[i]] > allocation[sectors[j]]
	})

	bars := make([]chart.Value, 0, len(sectors))
	for _, sector := range sectors {
		bars = append(bars, chart.Value{
			Label: string(sector),
			Value: allocation[sector],
			Style: chart.Style{
				FillColor:   sectorColors[sector],
				StrokeColor: sectorColors[sector],
			},
		})
	}

	graph := chart.BarChart{
		Title:    "Sector Allocation",
		Width:    900,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render allocation chart: %w", err)
	}
	return buf.Bytes(), nil
}
