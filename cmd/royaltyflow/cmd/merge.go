package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/reconcile"
)

var mergeOutFile string

// mergeCmd merges pre-extracted contract records into one.
var mergeCmd = &cobra.Command{
	Use:   "merge [record files...]",
	Short: "Merge contract records into one dataset",
	Long: `Merge combines contract record .yaml files in the given order into a single
record, deduplicating parties, works, and royalty shares on normalized
identity keys. First occurrence wins on duplicates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeOutFile, "out", "", "write the merged record to file instead of stdout")
}

func runMerge(_ *cobra.Command, args []string) error {
	records := make([]contracts.Record, 0, len(args))
	for _, path := range args {
		record, err := contracts.Load(path)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	merged := reconcile.Merge(records)

	if mergeOutFile != "" {
		return contracts.Save(merged, mergeOutFile)
	}

	data, err := yaml.Marshal(merged)
	if err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
