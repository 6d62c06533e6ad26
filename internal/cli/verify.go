package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/trucite/trucite/internal/extract"
	"github.com/trucite/trucite/internal/pipeline"
)

var (
	verifyFile    string
	verifyEventID string
	verifyHTML    bool
	verifyScorer  string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [text]",
	Short: "Verify a single text and print the report",
	Long: `Verify runs one document through the verification pipeline:
- Splits the text into sentence-level claims and classifies each one
- Fingerprints the normalized input for auditing
- Cross-references claims against the known-fact index
- Scores the document and prints the full report as JSON

The text comes from the argument, --file, or stdin ("-").

Example:
  trucite verify "The Moon is made of rock."
  trucite verify --file article.txt --event-id run-42
  cat page.html | trucite verify - --html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "read the text from a file")
	verifyCmd.Flags().StringVar(&verifyEventID, "event-id", "", "caller-supplied event id (generated when empty)")
	verifyCmd.Flags().BoolVar(&verifyHTML, "html", false, "treat the input as HTML and verify its visible text")
	verifyCmd.Flags().StringVar(&verifyScorer, "scorer", "", "scoring strategy: constant or heuristic (default from config)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	if verifyHTML {
		text, err = extract.VisibleText(text)
		if err != nil {
			return eris.Wrap(err, "verify: parse html")
		}
	}

	if verifyScorer != "" {
		cfg.Engine.Scorer = verifyScorer
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.Run(text, verifyEventID)
	if err != nil {
		var verr *pipeline.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("input rejected: %s", verr.Reason)
		}
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return eris.Wrap(err, "verify: encode report")
	}
	fmt.Println(string(out))

	return nil
}

// readInput resolves the document text from the argument, --file, or stdin.
func readInput(args []string) (string, error) {
	if verifyFile != "" {
		data, err := os.ReadFile(verifyFile)
		if err != nil {
			return "", eris.Wrapf(err, "verify: read %s", verifyFile)
		}
		return string(data), nil
	}

	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", eris.Wrap(err, "verify: read stdin")
		}
		return string(data), nil
	}

	return "", errors.New("no input: pass text as an argument, use --file, or pipe to '-'")
}
