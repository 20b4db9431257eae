package protocol

import "text/template"

// The four canonical action protocols. These bodies are reviewed clinical
// boilerplate: front-line staff must see recognizable, fixed wording, so
// they are stored as data and covered by literal-string equality tests.
// Only the thrombolysis text interpolates anything, and only the configured
// agent's name and dosing figures.

const hemorrhagicText = `HEMORRHAGIC STROKE — NEUROSURGICAL PROTOCOL

Thrombolytic therapy is CONTRAINDICATED. Do not administer any thrombolytic
or antiplatelet agent.

1. Refer immediately to the neurosurgical team on call.
2. Keep the patient nil by mouth and elevate the head of the bed to 30 degrees.
3. Manage blood pressure per the intracerebral haemorrhage pathway; avoid
   abrupt reduction.
4. Reverse any anticoagulation in effect and send urgent coagulation studies.
5. Repeat neurological observations every 15 minutes until neurosurgical
   review.

Document the time of onset, imaging findings, and all medications given.`

const ischemicSupportiveText = `ISCHEMIC STROKE — OUTSIDE THROMBOLYSIS WINDOW

The patient is outside the treatment window for thrombolytic therapy.
Do NOT administer a thrombolytic agent.

1. Begin supportive stroke-unit care and swallow screening before any oral
   intake.
2. Start antiplatelet therapy (aspirin 300 mg) once intracranial haemorrhage
   has been excluded.
3. Maintain oxygen saturation above 94%, treat fever, and keep glucose in
   the normal range.
4. Assess for mechanical thrombectomy eligibility and discuss with the
   stroke interventional service where available.

Document the time of onset and the reason thrombolysis was withheld.`

const uncertainText = `UNDETERMINED STROKE TYPE — STABILIZE AND INVESTIGATE

The classification is indeterminate. Do NOT administer a thrombolytic agent
until the stroke type is established.

1. Stabilize airway, breathing, and circulation; obtain IV access.
2. Obtain urgent brain imaging (non-contrast CT) or repeat imaging if the
   initial study was non-diagnostic.
3. Monitor neurological status and vital signs every 15 minutes.
4. Re-run the assessment as soon as imaging or further clinical data is
   available.

Escalate to the stroke team if the deficit progresses at any point.`

// ischemicEligibleTemplate renders the thrombolysis protocol for the
// configured agent. All numeric figures arrive pre-formatted as strings so
// repeated renders are byte-identical.
var ischemicEligibleTemplate = template.Must(template.New("thrombolysis").Parse(
	`ISCHEMIC STROKE — THROMBOLYSIS PROTOCOL ({{.NameUpper}})

The patient is within the treatment window and eligible for thrombolytic
therapy. Confirm the absence of contraindications on the institutional
checklist before administration.

1. Administer {{.Name}} {{.DoseMgPerKg}} mg/kg IV, to a maximum total dose of
   {{.MaxDoseMg}} mg.
{{if .SingleBolus}}2. Give the entire dose as a single IV bolus over 5–10 seconds.
{{else}}2. Give {{.BolusPercent}}% of the total dose as an initial IV bolus over
   1 minute, then infuse the remainder over {{.InfusionMinutes}} minutes.
{{end}}3. Admit to a monitored stroke bed. Record blood pressure and neurological
   observations every 15 minutes during and after administration.
4. Withhold antiplatelet and anticoagulant agents for 24 hours after the
   infusion.
5. Obtain urgent repeat imaging on any neurological deterioration and stop
   the infusion immediately if haemorrhage is suspected.

Document the exact dose given, the bolus time, and the time of onset.`))
