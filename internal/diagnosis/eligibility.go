package diagnosis

// ThrombolysisWindowMinutes is the treatment window after symptom onset.
// 270 minutes (4.5 hours); eligibility requires strictly less than this.
const ThrombolysisWindowMinutes = 270

// Eligible reports thrombolytic-therapy eligibility. The rule is
// intentionally narrow so the decision stays auditable: ischemic stroke
// and onset strictly inside the window, nothing else.
func Eligible(st StrokeType, timeSinceOnsetMinutes float64) bool {
	return st == Ischemic && timeSinceOnsetMinutes < ThrombolysisWindowMinutes
}
