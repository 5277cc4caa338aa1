package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-finance/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuoteCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "quote", "--price", "40 Lakh", "--locale", "en-US", "--json")
	require.NoError(t, err)

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, int64(4_000_000), result.Quote.Principal)
	assert.Equal(t, int64(800_000), result.Quote.DownPayment)
	assert.Equal(t, 60, result.Quote.TermMonths)
	assert.Equal(t, int64(65_653), result.Quote.MonthlyPayment)
	assert.NotEmpty(t, result.ID)
}

func TestQuoteCommand_Table(t *testing.T) {
	out, err := runCLI(t, "quote", "--price", "4000000", "--term", "36", "--locale", "en-US")
	require.NoError(t, err)
	assert.Contains(t, out, "USD 101,016")
	assert.Contains(t, out, "36 months")
}

func TestQuoteCommand_InvalidTerm(t *testing.T) {
	_, err := runCLI(t, "quote", "--price", "4000000", "--term", "50")
	assert.ErrorIs(t, err, domain.ErrInvalidTerm)
}

func TestQuoteCommand_MissingPrice(t *testing.T) {
	_, err := runCLI(t, "quote")
	assert.Error(t, err)
}

func TestCompareCommand_Budget(t *testing.T) {
	out, err := runCLI(t, "compare", "--price", "4000000", "--budget", "60000", "--json")
	require.NoError(t, err)

	var result domain.TermComparisonResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 72, result.RecommendedTerm)
	assert.Len(t, result.Options, len(domain.AllowedTerms))
}

func TestCompareCommand_NoAffordableTerm(t *testing.T) {
	_, err := runCLI(t, "compare", "--price", "4000000", "--budget", "1000")
	assert.ErrorIs(t, err, domain.ErrNoAffordableTerm)
}

func TestCompareCommand_NegativeBudget(t *testing.T) {
	_, err := runCLI(t, "compare", "--price", "4000000", "--budget=-1")
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
}

func TestScheduleCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "schedule", "--price", "4000000", "--term", "36", "--json")
	require.NoError(t, err)

	var result domain.ScheduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Rows, 36)
	assert.Equal(t, int64(0), result.Rows[35].Balance)
}
