package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenbox/royaltyflow/internal/report"
	"github.com/greenbox/royaltyflow/internal/store"
)

var historyOutput string

// historyCmd lists saved calculation runs, or shows one run's payments.
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show saved calculation runs",
	Long: `History lists calculation runs previously saved with 'calculate --save'.
Given a run ID, it prints that run's payment records instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "table", "output format for a single run: summary|table|csv|json|yaml")
}

// historyPath resolves the run history database location.
func historyPath() string {
	if path := viper.GetString("history.path"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".royaltyflow.db"
	}
	return filepath.Join(home, ".royaltyflow.db")
}

func runHistory(cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()

	s, err := store.Open(historyPath())
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		payments, err := s.Payments(ctx, args[0])
		if err != nil {
			return err
		}
		return report.Write(os.Stdout, report.Format(historyOutput), payments)
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Run ID", "Created", "Statement", "Contracts", "Payments", "Grand Total"})
	for _, run := range runs {
		table.Append([]string{
			run.ID,
			run.CreatedAt.Format(time.RFC3339),
			run.StatementPath,
			strconv.Itoa(run.ContractCount),
			strconv.Itoa(run.PaymentCount),
			report.Money(run.GrandTotal),
		})
	}
	table.Render()

	return nil
}
