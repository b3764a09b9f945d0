// Package analytics derives the diversification, risk, performance, and
// recommendation profile of a portfolio.
package analytics

import "github.com/bobmcallan/stockpulse/internal/models"

// sectorTable is the static ticker classification. Lookup is case-sensitive
// on canonical uppercase symbols; anything unlisted is Other.
var sectorTable = map[string]models.Sector{
	// Technology
	"AAPL": models.SectorTechnology, "MSFT": models.SectorTechnology,
	"GOOGL": models.SectorTechnology, "AMZN": models.SectorTechnology,
	"META": models.SectorTechnology, "NVDA": models.SectorTechnology,
	"AMD": models.SectorTechnology, "TSLA": models.SectorTechnology,
	"SQ": models.SectorTechnology, "COIN": models.SectorTechnology,

	// Finance
	"JPM": models.SectorFinance, "BAC": models.SectorFinance,
	"GS": models.SectorFinance, "MS": models.SectorFinance,
	"C": models.SectorFinance, "WFC": models.SectorFinance,
	"V": models.SectorFinance, "MA": models.SectorFinance,

	// Healthcare
	"JNJ": models.SectorHealthcare, "UNH": models.SectorHealthcare,
	"PFE": models.SectorHealthcare, "ABBV": models.SectorHealthcare,
	"TMO": models.SectorHealthcare, "DHR": models.SectorHealthcare,

	// Consumer
	"PG": models.SectorConsumer, "KO": models.SectorConsumer,
	"PEP": models.SectorConsumer, "WMT": models.SectorConsumer,
	"HD": models.SectorConsumer, "MCD": models.SectorConsumer,
	"NKE": models.SectorConsumer,

	// Energy
	"XOM": models.SectorEnergy, "CVX": models.SectorEnergy,
	"COP": models.SectorEnergy, "SLB": models.SectorEnergy,

	// Utilities
	"NEE": models.SectorUtilities, "DUK": models.SectorUtilities,
	"SO": models.SectorUtilities, "D": models.SectorUtilities,
}

// ClassifySector maps a ticker symbol to its sector bucket.
func ClassifySector(symbol string) models.Sector {
	if sector, ok := sectorTable[symbol]; ok {
		return sector
	}
	return models.SectorOther
}
