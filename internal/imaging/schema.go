package imaging

import "strokeaid/internal/llm"

// classificationSchema is the structured output contract for CT
// classification. The stroke_type and clarity enums line up with the
// diagnosis package verdict types; reasoning is requested for the audit
// trail but never influences the verdict.
func classificationSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "ct-classification",
		Description: "Stroke classification from a non-contrast head CT",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stroke_type": map[string]any{
					"type":        "string",
					"enum":        []any{"ischemic", "hemorrhagic", "uncertain"},
					"description": "The stroke type visible on the scan. Use uncertain when the scan does not clearly show either.",
				},
				"clarity": map[string]any{
					"type":        "string",
					"enum":        []any{"high", "medium", "low"},
					"description": "How unambiguous the radiological findings are.",
				},
				"reasoning": map[string]any{
					"type":        "string",
					"description": "Brief radiological justification for the verdict.",
				},
			},
			"required":             []any{"stroke_type", "clarity", "reasoning"},
			"additionalProperties": false,
		},
	}
}
