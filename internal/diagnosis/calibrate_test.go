package diagnosis

import "testing"

func TestCalibrate_SirirajBands(t *testing.T) {
	cases := []struct {
		band MagnitudeBand
		want float64
	}{
		{MagnitudeStrong, 0.90},
		{MagnitudeModerate, 0.72},
		{MagnitudeWeak, 0.495},
	}
	for _, tc := range cases {
		got, err := Calibrate(&Outcome{Method: MethodSirirajScore, Magnitude: tc.band})
		if err != nil {
			t.Fatalf("Calibrate(%q): %v", tc.band, err)
		}
		if got != tc.want {
			t.Errorf("Calibrate(%q) = %v, want %v", tc.band, got, tc.want)
		}
	}
}

func TestCalibrate_ImageBands(t *testing.T) {
	cases := []struct {
		band ClarityBand
		want float64
	}{
		{ClarityHigh, 0.90},
		{ClarityMedium, 0.645},
		{ClarityLow, 0.25},
	}
	for _, tc := range cases {
		got, err := Calibrate(&Outcome{Method: MethodImageAnalysis, Clarity: tc.band})
		if err != nil {
			t.Fatalf("Calibrate(%q): %v", tc.band, err)
		}
		if got != tc.want {
			t.Errorf("Calibrate(%q) = %v, want %v", tc.band, got, tc.want)
		}
	}
}

func TestCalibrate_RangeInvariant(t *testing.T) {
	outcomes := []*Outcome{
		{Method: MethodSirirajScore, Magnitude: MagnitudeStrong},
		{Method: MethodSirirajScore, Magnitude: MagnitudeModerate},
		{Method: MethodSirirajScore, Magnitude: MagnitudeWeak},
		{Method: MethodImageAnalysis, Clarity: ClarityHigh},
		{Method: MethodImageAnalysis, Clarity: ClarityMedium},
		{Method: MethodImageAnalysis, Clarity: ClarityLow},
	}
	for _, o := range outcomes {
		conf, err := Calibrate(o)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if conf < 0 || conf > 1 {
			t.Errorf("confidence %v outside [0,1]", conf)
		}
	}
}

func TestCalibrate_UnknownBands(t *testing.T) {
	if _, err := Calibrate(&Outcome{Method: MethodSirirajScore}); err == nil {
		t.Error("want error for missing magnitude band")
	}
	if _, err := Calibrate(&Outcome{Method: MethodImageAnalysis, Clarity: "crisp"}); err == nil {
		t.Error("want error for unknown clarity band")
	}
	if _, err := Calibrate(&Outcome{Method: "vibes"}); err == nil {
		t.Error("want error for unknown method")
	}
}
