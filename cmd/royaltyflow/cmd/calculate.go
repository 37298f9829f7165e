package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenbox/royaltyflow/internal/config"
	"github.com/greenbox/royaltyflow/internal/extract"
	"github.com/greenbox/royaltyflow/internal/report"
	"github.com/greenbox/royaltyflow/internal/store"
	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/logging"
	"github.com/greenbox/royaltyflow/pkg/payout"
	"github.com/greenbox/royaltyflow/pkg/reconcile"
	"github.com/greenbox/royaltyflow/pkg/statement"
)

var (
	calculateStatement string
	calculateTitleCol  string
	calculatePayCol    string
	calculateOutput    string
	calculateOutFile   string
	calculateSave      bool
)

// calculateCmd runs the full pipeline: parse contracts, merge, ingest the
// statement, and calculate payments.
var calculateCmd = &cobra.Command{
	Use:   "calculate [contract files...]",
	Short: "Calculate royalty payments from contracts and a statement",
	Long: `Calculate parses each contract file (plain text via the Gemini API, or a
pre-extracted .yaml record), merges the extracted records into one dataset,
reads the royalty statement export, and produces the per-contributor payment
breakdown.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalculate,
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().StringVarP(&calculateStatement, "statement", "s", "", "royalty statement export (.csv or .tsv)")
	calculateCmd.Flags().StringVar(&calculateTitleCol, "title-column", "", "explicit statement title column (bypasses auto-detection)")
	calculateCmd.Flags().StringVar(&calculatePayCol, "payable-column", "", "explicit statement payable column (bypasses auto-detection)")
	calculateCmd.Flags().StringVarP(&calculateOutput, "output", "o", "summary", "output format: summary|table|csv|json|yaml")
	calculateCmd.Flags().StringVar(&calculateOutFile, "out", "", "write output to file instead of stdout")
	calculateCmd.Flags().BoolVar(&calculateSave, "save", false, "save the run to the local history database")
	_ = calculateCmd.MarkFlagRequired("statement")
}

func runCalculate(cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()

	records, err := loadContracts(ctx, args)
	if err != nil {
		return err
	}

	merged := reconcile.Merge(records)

	agg, err := statement.IngestFile(calculateStatement, statementOptions())
	if err != nil {
		return err
	}

	payments, err := payout.Calculate(merged, agg)
	if errors.IsEmptyStatement(err) {
		return errors.NewEmptyStatementError(calculateStatement)
	}
	if err != nil {
		return err
	}

	if calculateSave {
		if err := saveRun(ctx, len(records), payments); err != nil {
			return err
		}
	}

	return writeReport(payments)
}

// loadContracts parses each contract argument into a record. YAML files are
// read directly; anything else is treated as contract text and sent through
// the extraction collaborator. Per-file failures are logged and skipped; at
// least one record must survive.
func loadContracts(ctx context.Context, paths []string) ([]contracts.Record, error) {
	var extractor *extract.Extractor
	records := make([]contracts.Record, 0, len(paths))

	for _, path := range paths {
		record, err := loadContract(ctx, path, &extractor)
		if err != nil {
			logging.Warn().Err(err).Str("contract", path).Msg("Failed to parse contract")
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, errors.NewInvalidContractDataError("no valid contracts could be parsed")
	}
	return records, nil
}

func loadContract(ctx context.Context, path string, extractor **extract.Extractor) (contracts.Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return contracts.Load(path)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return contracts.Record{}, errors.WrapIO("read", path, err)
	}

	if *extractor == nil {
		e, err := extract.New(ctx)
		if err != nil {
			return contracts.Record{}, err
		}
		*extractor = e
	}
	return (*extractor).Parse(ctx, filepath.Base(path), string(text))
}

// statementOptions resolves column overrides from flags, falling back to
// config file keys.
func statementOptions() *statement.Options {
	opts := &statement.Options{
		TitleColumn:   calculateTitleCol,
		PayableColumn: calculatePayCol,
	}
	if opts.TitleColumn == "" {
		opts.TitleColumn = config.TitleColumn()
	}
	if opts.PayableColumn == "" {
		opts.PayableColumn = config.PayableColumn()
	}
	return opts
}

func saveRun(ctx context.Context, contractCount int, payments []payout.Payment) error {
	s, err := store.Open(historyPath())
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.SaveRun(ctx, calculateStatement, contractCount, payments)
	if err != nil {
		return err
	}

	logging.Info().Str("run_id", run.ID).Msg("Saved calculation run")
	return nil
}

func writeReport(payments []payout.Payment) error {
	w := os.Stdout
	if calculateOutFile != "" {
		f, err := os.Create(calculateOutFile)
		if err != nil {
			return errors.WrapIO("create", calculateOutFile, err)
		}
		defer f.Close()
		w = f
	}
	return report.Write(w, report.Format(calculateOutput), payments)
}
