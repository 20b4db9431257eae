package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"strokeaid/internal/diagnosis"
)

// templateView holds the pre-formatted interpolation points for the
// thrombolysis text. Numbers are formatted once, here, so the rendered
// protocol is byte-stable across evaluations.
type templateView struct {
	Name            string
	NameUpper       string
	DoseMgPerKg     string
	MaxDoseMg       string
	BolusPercent    string
	InfusionMinutes string
	SingleBolus     bool
}

// Select returns the canonical action protocol for a (strokeType, eligible)
// pair. The text is fully determined by that pair plus the configured agent
// regime; no patient-specific value is ever interpolated.
func Select(st diagnosis.StrokeType, eligible bool, agent AgentConfig) (string, error) {
	if err := agent.Validate(); err != nil {
		return "", err
	}

	switch st {
	case diagnosis.Hemorrhagic:
		return hemorrhagicText, nil
	case diagnosis.Uncertain:
		return uncertainText, nil
	case diagnosis.Ischemic:
		if !eligible {
			return ischemicSupportiveText, nil
		}
		return renderThrombolysis(agent)
	}

	return "", &ConfigurationError{Message: fmt.Sprintf("no protocol for stroke type %q", st)}
}

func renderThrombolysis(agent AgentConfig) (string, error) {
	view := templateView{
		Name:            agent.Name,
		NameUpper:       strings.ToUpper(agent.Name),
		DoseMgPerKg:     formatNumber(agent.DoseMgPerKg),
		MaxDoseMg:       formatNumber(agent.MaxDoseMg),
		BolusPercent:    formatNumber(agent.BolusPercent),
		InfusionMinutes: strconv.Itoa(agent.InfusionMinutes),
		SingleBolus:     agent.BolusPercent == 100,
	}

	var b strings.Builder
	if err := ischemicEligibleTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render thrombolysis protocol: %w", err)
	}
	return b.String(), nil
}

// formatNumber renders a dose figure without a trailing ".0" for whole
// numbers (90, not 90.0) and without float noise for fractions (0.9).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
