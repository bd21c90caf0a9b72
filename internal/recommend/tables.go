package recommend

// macroFitTables maps a market regime to per-sector fit scores.
// Simplified sector rotation: cyclical sectors lead in a bull regime,
// defensives in a bear regime, everything is flat at 50 in neutral.
// Unknown sectors score 50 in every regime.
var macroFitTables = map[string]map[string]float64{
	"bull": {
		"Technology":             80,
		"Consumer Discretionary": 75,
		"Financials":             70,
		"Industrials":            65,
		"Energy":                 60,
		"Materials":              60,
		"Healthcare":             55,
		"Consumer Staples":       50,
		"Utilities":              45,
		"Real Estate":            50,
	},
	"bear": {
		"Utilities":              80,
		"Consumer Staples":       75,
		"Healthcare":             70,
		"Real Estate":            60,
		"Financials":             50,
		"Industrials":            45,
		"Materials":              45,
		"Energy":                 50,
		"Technology":             40,
		"Consumer Discretionary": 35,
	},
	"neutral": {
		"Technology":             50,
		"Healthcare":             50,
		"Financials":             50,
		"Energy":                 50,
		"Utilities":              50,
		"Consumer Staples":       50,
		"Consumer Discretionary": 50,
		"Industrials":            50,
		"Materials":              50,
		"Real Estate":            50,
	},
}
