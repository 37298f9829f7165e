package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenbox/royaltyflow/internal/extract"
	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/logging"
)

var (
	extractModel  string
	extractOutDir string
)

// extractCmd extracts structured contract records from contract text files.
var extractCmd = &cobra.Command{
	Use:   "extract [contract text files...]",
	Short: "Extract contract records from contract text",
	Long: `Extract runs each contract text file through the Gemini API and writes one
.yaml contract record per input, next to the input file or into --out-dir.
The records can be fed back into calculate and merge without re-extraction.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractModel, "model", extract.DefaultModel, "Gemini model to use")
	extractCmd.Flags().StringVar(&extractOutDir, "out-dir", "", "directory for extracted .yaml records")
}

func runExtract(cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()

	extractor, err := extract.New(ctx)
	if err != nil {
		return err
	}
	extractor.WithModel(extractModel)

	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return errors.WrapIO("read", path, err)
		}

		record, err := extractor.Parse(ctx, filepath.Base(path), string(text))
		if err != nil {
			return err
		}

		out := recordPath(path)
		if err := contracts.Save(record, out); err != nil {
			return err
		}
		logging.Info().Str("contract", path).Str("record", out).Msg("Wrote contract record")
	}

	return nil
}

// recordPath derives the output .yaml path for a contract text file.
func recordPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".yaml"
	if extractOutDir != "" {
		return filepath.Join(extractOutDir, base)
	}
	return filepath.Join(filepath.Dir(path), base)
}
