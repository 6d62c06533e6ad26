package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/trucite/trucite/internal/worker"
)

var batchConcurrency int

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify many documents from a file, one per line",
	Long: `Batch reads one document per line from the given file (use "-" for
stdin), verifies each through the pipeline concurrently, and prints one
JSON report per line in input order. Blank lines are skipped.

Example:
  trucite batch documents.txt --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent verifications")
}

func runBatch(cmd *cobra.Command, args []string) error {
	texts, err := readLines(args[0])
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return eris.New("batch: no documents found")
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, batchConcurrency)
	results := processor.Process(texts)

	enc := json.NewEncoder(os.Stdout)
	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", result.Index+1, result.Err)
			continue
		}
		if err := enc.Encode(result.Report); err != nil {
			return eris.Wrap(err, "batch: encode report")
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Verified %d documents, %d failed\n", len(results)-failures, failures)
	}
	if failures == len(results) {
		return eris.New("batch: every document failed")
	}
	return nil
}

// readLines loads non-blank lines from path, or stdin for "-".
func readLines(path string) ([]string, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "batch: open %s", path)
		}
		defer f.Close()
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "batch: read %s", path)
	}
	return lines, nil
}
