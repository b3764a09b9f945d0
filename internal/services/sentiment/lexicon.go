package sentiment

// lexicon maps lowercase tokens to polarity weights, AFINN-style. Trimmed to
// the vocabulary that actually shows up in market discussion — general praise
// and complaint words plus trading slang.
var lexicon = map[string]int{
	// Strong positive
	"amazing": 4, "awesome": 4, "excellent": 3, "fantastic": 4,
	"wonderful": 4, "outstanding": 5, "superb": 5, "breakthrough": 3,
	"brilliant": 4, "exceptional": 3, "incredible": 4, "phenomenal": 4,
	"thrilled": 5, "stellar": 3,

	// Positive
	"beat": 2, "beats": 2, "bull": 2, "bullish": 2, "buy": 1,
	"confident": 2, "gain": 2, "gains": 2, "good": 3, "great": 3,
	"growth": 2, "happy": 3, "healthy": 2, "improved": 2, "improving": 2,
	"love": 3, "lucrative": 3, "opportunity": 2, "optimistic": 2,
	"outperform": 2, "profit": 2, "profitable": 2, "profits": 2,
	"promising": 2, "rally": 2, "rebound": 2, "recovery": 2, "reward": 2,
	"rise": 1, "rising": 1, "robust": 2, "solid": 2, "soar": 2,
	"soared": 2, "soaring": 2, "strong": 2, "success": 2, "successful": 3,
	"surge": 2, "surged": 2, "thriving": 3, "undervalued": 1, "upgrade": 2,
	"upside": 2, "win": 4, "winner": 4, "winning": 4, "worth": 2,

	// Negative
	"avoid": -1, "bad": -3, "bear": -2, "bearish": -2, "bleak": -2,
	"collapse": -2, "concern": -2, "concerned": -2, "concerns": -2,
	"crash": -2, "debt": -2, "decline": -2, "declining": -2, "down": -1,
	"downgrade": -2, "downside": -2, "drop": -2, "dropped": -2, "dump": -2,
	"fall": -2, "falling": -2, "fear": -2, "fears": -2, "fraud": -4,
	"lawsuit": -2, "lose": -3, "loses": -3, "losing": -3, "loss": -3,
	"losses": -3, "lost": -3, "miss": -2, "missed": -2, "overvalued": -1,
	"panic": -3, "plummet": -3, "plunge": -3, "poor": -2, "risk": -2,
	"risky": -2, "sell": -1, "selloff": -2, "short": -1, "slump": -2,
	"struggle": -2, "struggling": -2, "tank": -2, "tanked": -2,
	"underperform": -2, "volatile": -2, "warning": -3, "weak": -2,
	"worried": -3, "worry": -3, "worse": -3, "worst": -3,

	// Strong negative
	"awful": -3, "catastrophic": -4, "disaster": -2, "disastrous": -3,
	"dreadful": -3, "horrible": -3, "scam": -2, "terrible": -3,
	"worthless": -2, "bankrupt": -3, "bankruptcy": -3,
}
