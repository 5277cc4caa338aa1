package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dealer-finance/domain"
	"dealer-finance/service"
)

func newCompareCmd(flags *quoteFlags) *cobra.Command {
	var budget int64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare installments across every offered term",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			loans := flags.loanService()
			result, err := service.NewTermComparisonService(loans).CompareTerms(context.Background(),
				domain.TermComparisonRequest{QuoteRequest: req, MaxMonthlyPayment: budget})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.jsonOut {
				return writeJSON(out, result)
			}

			money := loans.Money()
			fmt.Fprintln(out, titleStyle.Render("Term comparison for "+money.Format(result.LoanAmount)))
			fmt.Fprintf(out, "  %s\n", mutedStyle.Render(fmt.Sprintf("%-8s %-18s %-18s %s", "TERM", "EMI", "INTEREST", "")))
			for _, opt := range result.Options {
				marker := ""
				switch {
				case opt.TermMonths == result.RecommendedTerm:
					marker = "recommended"
				case !opt.Affordable:
					marker = "over budget"
				}
				line := fmt.Sprintf("%-8d %-18s %-18s %s",
					opt.TermMonths, money.Format(opt.MonthlyPayment), money.Format(opt.TotalInterest), marker)
				if opt.TermMonths == result.RecommendedTerm {
					line = valueStyle.Render(line)
				}
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintf(out, "\n  %s\n", mutedStyle.Render(result.Reason))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Int64Var(&budget, "budget", 0, "maximum affordable monthly installment")
	return cmd
}
