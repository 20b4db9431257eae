package llm

import "strings"

// ModelCost holds per-million-token pricing in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// modelCosts lists pricing for the vision-capable models this tool can be
// pointed at. Prices as of early 2025; used for log estimates only.
var modelCosts = map[string]ModelCost{
	"claude-sonnet-4-20250514":   {InputPerMTok: 3.00, OutputPerMTok: 15.00},
	"claude-haiku-4-5-20251001":  {InputPerMTok: 1.00, OutputPerMTok: 5.00},
	"gpt-4o":                     {InputPerMTok: 2.50, OutputPerMTok: 10.00},
	"gpt-4o-mini":                {InputPerMTok: 0.15, OutputPerMTok: 0.60},
	"gemini-2.0-flash":           {InputPerMTok: 0.10, OutputPerMTok: 0.40},
	"gemini-2.0-pro":             {InputPerMTok: 1.25, OutputPerMTok: 5.00},
	"google/gemini-2.0-flash-exp": {InputPerMTok: 0.10, OutputPerMTok: 0.40},
}

// LookupCost returns pricing for the given model ID. Unknown models return
// (ModelCost{}, false); falls back to a prefix match so dated model IDs
// still resolve.
func LookupCost(model string) (ModelCost, bool) {
	if c, ok := modelCosts[model]; ok {
		return c, true
	}
	for id, c := range modelCosts {
		if strings.HasPrefix(model, id) {
			return c, true
		}
	}
	return ModelCost{}, false
}

// EstimateCost computes the estimated USD cost of a request from its token
// usage. Returns 0 for unknown models.
func EstimateCost(model string, usage Usage) float64 {
	c, ok := LookupCost(model)
	if !ok {
		return 0
	}
	return float64(usage.InputTokens)/1e6*c.InputPerMTok +
		float64(usage.OutputTokens)/1e6*c.OutputPerMTok
}
