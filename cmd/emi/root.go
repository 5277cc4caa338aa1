package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"dealer-finance/domain"
	"dealer-finance/repository"
	"dealer-finance/service"
)

const Version = "1.0.0"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// quoteFlags are shared by every command that prices a loan.
type quoteFlags struct {
	price   string
	down    int64
	term    int
	rate    float64
	locale  string
	jsonOut bool
}

func (f *quoteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.price, "price", "p", "", `vehicle price, e.g. 4000000, "40,00,000" or "40 Lakh"`)
	cmd.Flags().Int64VarP(&f.down, "down", "d", 0, "down payment (default 20% of price, clamped to 10-50%)")
	cmd.Flags().IntVarP(&f.term, "term", "t", domain.DefaultTermMonths, "term in months: 36, 48, 60, 72 or 84")
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", domain.DefaultAnnualRate, "annual interest rate in percent (7.0-15.0)")
	_ = cmd.MarkFlagRequired("price")
}

// request turns the flags into a QuoteRequest; only flags the user actually
// set override the defaults.
func (f *quoteFlags) request(cmd *cobra.Command) (domain.QuoteRequest, error) {
	price, err := domain.ParsePrice(f.price)
	if err != nil {
		return domain.QuoteRequest{}, err
	}
	req := domain.QuoteRequest{Price: price}
	if cmd.Flags().Changed("down") {
		req.DownPayment = &f.down
	}
	if cmd.Flags().Changed("term") {
		req.TermMonths = &f.term
	}
	if cmd.Flags().Changed("rate") {
		req.AnnualRatePercent = &f.rate
	}
	return req, nil
}

func (f *quoteFlags) loanService() *service.LoanService {
	return service.NewLoanService(
		repository.NewLoanRepositoryMemory(1),
		repository.NewLRUCache(16, time.Minute),
		service.NewMoneyFormatter(f.locale),
	)
}

func newRootCmd() *cobra.Command {
	flags := &quoteFlags{}

	root := &cobra.Command{
		Use:           "emi",
		Short:         "Vehicle financing calculator",
		Long:          "emi prices monthly installments for a vehicle purchase using a fixed-rate amortizing loan.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.locale, "locale", "en-IN", "locale used to format amounts")
	root.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "print machine readable JSON")

	root.AddCommand(
		newQuoteCmd(flags),
		newCompareCmd(flags),
		newScheduleCmd(flags),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
}

func newQuoteCmd(flags *quoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price the monthly installment for a vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			svc := flags.loanService()
			result, err := svc.Quote(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.jsonOut {
				return writeJSON(out, result)
			}

			money := svc.Money()
			q := result.Quote
			fmt.Fprintln(out, titleStyle.Render("Financing quote"))
			writeField(out, "Price", money.Format(q.Principal))
			writeField(out, "Down payment", fmt.Sprintf("%s (%s - %s)",
				money.Format(q.DownPayment), money.Format(result.Bounds.Min), money.Format(result.Bounds.Max)))
			writeField(out, "Loan amount", money.Format(q.LoanAmount))
			writeField(out, "Term", fmt.Sprintf("%d months", q.TermMonths))
			writeField(out, "Rate", fmt.Sprintf("%.1f%% p.a.", q.AnnualRatePercent))
			writeField(out, "Monthly EMI", money.Format(q.MonthlyPayment))
			writeField(out, "Total interest", money.Format(result.TotalInterest))
			writeField(out, "Total payable", money.Format(result.TotalPayment))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
