package protocol

import (
	"fmt"
	"strings"
)

// AgentConfig describes a thrombolytic agent regime. The same four-variant
// protocol logic serves different regimes; only these figures vary.
type AgentConfig struct {
	// Name is the drug name as it should appear in the protocol text,
	// e.g. "alteplase".
	Name string
	// DoseMgPerKg is the weight-based total dose.
	DoseMgPerKg float64
	// MaxDoseMg caps the total dose.
	MaxDoseMg float64
	// BolusPercent is the share of the total dose given as the initial
	// IV bolus, in (0, 100]. 100 means single-bolus administration.
	BolusPercent float64
	// InfusionMinutes is the infusion time for the remainder of the dose.
	// Zero iff BolusPercent == 100.
	InfusionMinutes int
}

// ConfigurationError reports an unrecognized or inconsistent agent
// configuration. It is fatal to the evaluation and not retryable without
// fixing the configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "agent configuration: " + e.Message
}

// Built-in regimes. Two agents have been used over the system's history.
var builtinAgents = map[string]AgentConfig{
	"alteplase": {
		Name:            "alteplase",
		DoseMgPerKg:     0.9,
		MaxDoseMg:       90,
		BolusPercent:    10,
		InfusionMinutes: 60,
	},
	"tenecteplase": {
		Name:            "tenecteplase",
		DoseMgPerKg:     0.25,
		MaxDoseMg:       25,
		BolusPercent:    100,
		InfusionMinutes: 0,
	},
}

// LookupAgent resolves a built-in agent regime by name (case-insensitive).
func LookupAgent(name string) (AgentConfig, error) {
	cfg, ok := builtinAgents[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return AgentConfig{}, &ConfigurationError{
			Message: fmt.Sprintf("unknown agent %q (known: %s)", name, strings.Join(AgentNames(), ", ")),
		}
	}
	return cfg, nil
}

// AgentNames returns the built-in regime names in stable order.
func AgentNames() []string {
	return []string{"alteplase", "tenecteplase"}
}

// DefaultAgent returns the regime used when none is configured.
func DefaultAgent() AgentConfig {
	return builtinAgents["alteplase"]
}

// Validate checks the regime for internal consistency.
func (c AgentConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ConfigurationError{Message: "agent name is empty"}
	}
	if c.DoseMgPerKg <= 0 {
		return &ConfigurationError{Message: fmt.Sprintf("dose %v mg/kg must be positive", c.DoseMgPerKg)}
	}
	if c.MaxDoseMg <= 0 {
		return &ConfigurationError{Message: fmt.Sprintf("max dose %v mg must be positive", c.MaxDoseMg)}
	}
	if c.BolusPercent <= 0 || c.BolusPercent > 100 {
		return &ConfigurationError{Message: fmt.Sprintf("bolus percentage %v outside (0, 100]", c.BolusPercent)}
	}
	if c.BolusPercent == 100 && c.InfusionMinutes != 0 {
		return &ConfigurationError{Message: "single-bolus regime must not set an infusion time"}
	}
	if c.BolusPercent < 100 && c.InfusionMinutes <= 0 {
		return &ConfigurationError{Message: "split-dose regime requires a positive infusion time"}
	}
	return nil
}
