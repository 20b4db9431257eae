package diagnosis

import "testing"

func TestEligible_WindowBoundary(t *testing.T) {
	if !Eligible(Ischemic, 269) {
		t.Error("ischemic at 269 minutes should be eligible")
	}
	if Eligible(Ischemic, 270) {
		t.Error("ischemic at exactly 270 minutes must not be eligible")
	}
	if !Eligible(Ischemic, 0) {
		t.Error("ischemic at onset should be eligible")
	}
	if !Eligible(Ischemic, 269.999) {
		t.Error("strictly-less-than comparison expected")
	}
}

func TestEligible_NonIschemicNeverEligible(t *testing.T) {
	for _, st := range []StrokeType{Hemorrhagic, Uncertain} {
		if Eligible(st, 10) {
			t.Errorf("%s should never be eligible", st)
		}
	}
}
