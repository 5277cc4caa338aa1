package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newScheduleCmd(flags *quoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			loans := flags.loanService()
			result, err := loans.Schedule(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.jsonOut {
				return writeJSON(out, result)
			}

			money := loans.Money()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Amortization schedule, %d months at %.1f%%",
				result.Quote.TermMonths, result.Quote.AnnualRatePercent)))
			fmt.Fprintf(out, "  %s\n", mutedStyle.Render(fmt.Sprintf("%-6s %-18s %-18s %-18s %s",
				"MONTH", "PAYMENT", "INTEREST", "PRINCIPAL", "BALANCE")))
			for _, row := range result.Rows {
				fmt.Fprintf(out, "  %-6d %-18s %-18s %-18s %s\n", row.Month,
					money.Format(row.Payment), money.Format(row.Interest),
					money.Format(row.Principal), money.Format(row.Balance))
			}
			writeField(out, "Total interest", money.Format(result.TotalInterest))
			writeField(out, "Total payable", money.Format(result.TotalPayment))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
