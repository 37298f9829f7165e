package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/greenbox/royaltyflow/internal/report"
	"github.com/greenbox/royaltyflow/pkg/statement"
)

var (
	inspectTitleCol string
	inspectPayCol   string
)

// inspectCmd shows how a statement export resolves: detected columns and
// per-title totals.
var inspectCmd = &cobra.Command{
	Use:   "inspect [statement file]",
	Short: "Inspect a royalty statement export",
	Long: `Inspect reads a statement export, reports which title and payable columns
were detected (or explicitly selected), and prints the aggregated per-title
totals the calculator would see.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectTitleCol, "title-column", "", "explicit statement title column")
	inspectCmd.Flags().StringVar(&inspectPayCol, "payable-column", "", "explicit statement payable column")
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	rows, err := statement.ReadCSV(path)
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		headers := statement.NormalizeHeaders(rows[0])
		if i, err := statement.DetectTitleColumn(headers); err == nil {
			fmt.Printf("title column:   %s\n", headers[i])
		}
		if i, err := statement.DetectPayableColumn(headers); err == nil {
			fmt.Printf("payable column: %s\n", headers[i])
		}
	}

	agg, err := statement.Ingest(rows, &statement.Options{
		TitleColumn:   inspectTitleCol,
		PayableColumn: inspectPayCol,
	})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Title", "Total Payable"})
	agg.Each(func(title string, total float64) bool {
		table.Append([]string{title, report.Money(total)})
		return true
	})
	table.Render()

	return nil
}
