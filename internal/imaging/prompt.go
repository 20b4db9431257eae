package imaging

import (
	"fmt"
	"strings"
	"text/template"

	"strokeaid/internal/assessment"
)

const systemPrompt = `You are a neuroradiology assistant reading a non-contrast head CT for acute stroke triage.

Classify the scan as one of:
- "hemorrhagic": visible intracranial blood (hyperdense collection, intraparenchymal, subarachnoid, or intraventricular)
- "ischemic": early ischemic change or a normal scan in a patient with stroke symptoms (ischemia is often CT-occult in the first hours)
- "uncertain": artifact, poor quality, or findings that do not let you commit either way

Report clarity as "high" when the findings are unmistakable, "medium" when suggestive but not definitive, and "low" when you are close to guessing.

Base the verdict on the image. The clinical context below the image is background, not evidence.`

const userPromptText = `Classify the attached head CT.

Clinical context:
- Time since symptom onset: {{printf "%.0f" .TimeSinceOnsetMinutes}} minutes
- Facial droop: {{yesno .FaceDroop}}
- Slurred speech: {{yesno .SpeechSlurred}}
- Arm weakness: {{.ArmWeakness}}
- Blood pressure: {{bp .SystolicBP .DiastolicBP}}
- History of hypertension: {{yesno .HistoryHypertension}}
- History of diabetes: {{yesno .HistoryDiabetes}}
- Smoking history: {{yesno .HistorySmoking}}
- Level of consciousness: {{loc .LOC}}
- Vomiting: {{optyesno .Vomiting}}
- Headache: {{optyesno .Headache}}`

// userPromptTemplate renders the non-image clinical fields as background
// for the radiological read. Optional fields render as "not recorded" so
// the model does not mistake absence for a negative finding.
var userPromptTemplate = template.Must(template.New("clinical-context").Funcs(template.FuncMap{
	"yesno": func(v bool) string {
		if v {
			return "yes"
		}
		return "no"
	},
	"optyesno": func(v *bool) string {
		if v == nil {
			return "not recorded"
		}
		if *v {
			return "yes"
		}
		return "no"
	},
	"loc": func(v *assessment.Consciousness) string {
		if v == nil {
			return "not recorded"
		}
		return string(*v)
	},
	"bp": func(sys, dia *float64) string {
		if sys == nil || dia == nil {
			return "not recorded"
		}
		return fmt.Sprintf("%.0f/%.0f mmHg", *sys, *dia)
	},
}).Parse(userPromptText))

// buildUserPrompt renders the clinical context for the given assessment.
func buildUserPrompt(a *assessment.PatientAssessment) (string, error) {
	var sb strings.Builder
	if err := userPromptTemplate.Execute(&sb, a); err != nil {
		return "", fmt.Errorf("render clinical context: %w", err)
	}
	return sb.String(), nil
}
