package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"strokeaid/internal/assessment"
	"strokeaid/internal/diagnosis"
	"strokeaid/internal/engine"
	"strokeaid/internal/protocol"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <assessment.json>",
	Short: "Evaluate a patient assessment and print the diagnosis",
	Long: "Evaluate reads a patient assessment record (JSON file, or \"-\" for stdin)\n" +
		"and runs the full pipeline: validation, classification, confidence\n" +
		"calibration, thrombolysis eligibility, and protocol selection.\n\n" +
		"A CT image can be embedded in the record's ct_scan field or attached\n" +
		"with --image; either way the image capability decides the stroke type\n" +
		"and an LLM provider must be configured via STROKEAID_* env vars.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath, _ := cmd.Flags().GetString("image")
		agentName, _ := cmd.Flags().GetString("agent")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		asJSON, _ := cmd.Flags().GetBool("json")

		raw, err := readAssessment(args[0])
		if err != nil {
			return err
		}

		if imagePath != "" {
			scan, err := loadScan(imagePath)
			if err != nil {
				return err
			}
			raw.CTScan = scan
		}

		agent, err := protocol.LookupAgent(agentName)
		if err != nil {
			return err
		}

		cfg := engine.Config{
			Agent:        agent,
			ImageTimeout: timeout,
		}

		// The provider is only needed (and only required to be configured)
		// when the record actually carries an image.
		var classifier diagnosis.ImageClassifier
		if raw.CTScan != nil && (len(raw.CTScan.Data) > 0 || raw.CTScan.URI != "") {
			classifier, err = buildClassifier(cmd)
			if err != nil {
				return err
			}
		}

		svc := engine.New(classifier, cfg)
		result, err := svc.Evaluate(cmd.Context(), raw)
		if err != nil {
			return err
		}

		if asJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		printResult(result)
		return nil
	},
}

func readAssessment(path string) (*assessment.Raw, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read assessment: %w", err)
	}

	var raw assessment.Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse assessment JSON: %w", err)
	}
	return &raw, nil
}

func loadScan(path string) (*assessment.CTScan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("unsupported image file %q: want .png or .jpg", path)
	}

	return &assessment.CTScan{
		MediaType: mediaType,
		Data:      data,
	}, nil
}

func printResult(r *engine.DiagnosisResult) {
	sep := strings.Repeat("─", 72)

	fmt.Printf("Stroke type:  %s\n", r.StrokeType)
	fmt.Printf("Confidence:   %.1f%%\n", r.Confidence*100)
	fmt.Printf("Method:       %s\n", r.MethodUsed)
	eligible := "no"
	if r.ThrombolyticEligible {
		eligible = "yes"
	}
	fmt.Printf("Thrombolysis: %s\n", eligible)

	fmt.Println()
	fmt.Println(sep)
	fmt.Println("ACTION PROTOCOL")
	fmt.Println(sep)
	fmt.Println(r.ActionProtocol)
}

func init() {
	evaluateCmd.Flags().StringP("image", "i", "", "Path to a CT image to attach (PNG or JPEG)")
	evaluateCmd.Flags().StringP("agent", "a", "alteplase", "Thrombolytic agent regime")
	evaluateCmd.Flags().DurationP("timeout", "t", 60*time.Second, "Timeout for the image-analysis call")
	evaluateCmd.Flags().Bool("json", false, "Print the result as JSON")
}
