package protocol

import (
	"errors"
	"strings"
	"testing"

	"strokeaid/internal/diagnosis"
)

func TestSelect_HemorrhagicIgnoresEligibility(t *testing.T) {
	agent := DefaultAgent()
	a, err := Select(diagnosis.Hemorrhagic, false, agent)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	b, err := Select(diagnosis.Hemorrhagic, true, agent)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if a != b {
		t.Error("hemorrhagic text must not depend on eligibility")
	}
	if a != hemorrhagicText {
		t.Error("hemorrhagic text must match the canonical constant byte for byte")
	}
	if !strings.Contains(a, "CONTRAINDICATED") {
		t.Error("hemorrhagic protocol must state the contraindication")
	}
}

func TestSelect_UncertainText(t *testing.T) {
	got, err := Select(diagnosis.Uncertain, false, DefaultAgent())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != uncertainText {
		t.Error("uncertain text must match the canonical constant byte for byte")
	}
}

func TestSelect_IschemicNotEligible(t *testing.T) {
	got, err := Select(diagnosis.Ischemic, false, DefaultAgent())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != ischemicSupportiveText {
		t.Error("supportive-care text must match the canonical constant byte for byte")
	}
	if strings.Contains(got, DefaultAgent().Name) {
		t.Error("supportive-care text must not mention the thrombolytic agent")
	}
}

func TestSelect_IschemicEligibleAlteplase(t *testing.T) {
	got, err := Select(diagnosis.Ischemic, true, DefaultAgent())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for _, want := range []string{
		"THROMBOLYSIS PROTOCOL (ALTEPLASE)",
		"alteplase 0.9 mg/kg IV",
		"maximum total dose of\n   90 mg",
		"10% of the total dose as an initial IV bolus",
		"over 60 minutes",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("alteplase protocol missing %q\n---\n%s", want, got)
		}
	}
	if strings.Contains(got, "single IV bolus") {
		t.Error("split-dose regime must not render the single-bolus line")
	}
}

func TestSelect_IschemicEligibleTenecteplase(t *testing.T) {
	agent, err := LookupAgent("tenecteplase")
	if err != nil {
		t.Fatalf("LookupAgent: %v", err)
	}
	got, err := Select(diagnosis.Ischemic, true, agent)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for _, want := range []string{
		"THROMBOLYSIS PROTOCOL (TENECTEPLASE)",
		"tenecteplase 0.25 mg/kg IV",
		"maximum total dose of\n   25 mg",
		"single IV bolus over 5–10 seconds",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("tenecteplase protocol missing %q\n---\n%s", want, got)
		}
	}
}

func TestSelect_ByteIdenticalAcrossCalls(t *testing.T) {
	agent := DefaultAgent()
	first, err := Select(diagnosis.Ischemic, true, agent)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for range 3 {
		again, err := Select(diagnosis.Ischemic, true, agent)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if again != first {
			t.Fatal("repeated selection produced different bytes")
		}
	}
}

func TestSelect_InvalidAgent(t *testing.T) {
	_, err := Select(diagnosis.Ischemic, true, AgentConfig{Name: "alteplase"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}

func TestSelect_UnknownStrokeType(t *testing.T) {
	_, err := Select("lacunar", false, DefaultAgent())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}
