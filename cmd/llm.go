package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"strokeaid/internal/diagnosis"
	"strokeaid/internal/imaging"
	"strokeaid/internal/llm"
)

// buildClassifier wires the LLM-backed CT classifier from the environment.
// Request logging goes to stderr so the result on stdout stays clean.
func buildClassifier(cmd *cobra.Command) (diagnosis.ImageClassifier, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("image capability: %w", err)
	}
	return imaging.NewClassifier(provider), nil
}
