package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/qif"
)

func newInspectCommand() *cobra.Command {
	var limit int
	var dateFormat string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the transactions in a QIF export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectFile(args[0], ledger.DateFormat(dateFormat), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum transactions to print (0 = all)")
	cmd.Flags().StringVar(&dateFormat, "date-format", string(ledger.DateFormatDDMMYY), "date format: ddmmyy or mmddyy")

	return cmd
}

func inspectFile(path string, dateFormat ledger.DateFormat, limit int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	qf, err := qif.Parse(f, dateFormat, '.')
	if err != nil {
		return err
	}

	for i, rec := range qf.Records {
		if limit > 0 && i == limit {
			break
		}
		fmt.Printf("transaction: date %s: description: %s for amount %s\n",
			rec.Date, rec.Payee, rec.Amount)
	}
	fmt.Printf("%d transactions, %d account definitions\n", len(qf.Records), len(qf.Accounts))
	return nil
}
