package service

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormatter renders whole currency amounts with locale digit grouping,
// e.g. "INR 40,00,000" for en-IN or "USD 4,000,000" for en-US.
type MoneyFormatter struct {
	printer *message.Printer
	code    string
}

// NewMoneyFormatter falls back to English when locale cannot be parsed.
func NewMoneyFormatter(locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, _ := currency.FromTag(tag)
	return &MoneyFormatter{
		printer: message.NewPrinter(tag),
		code:    unit.String(),
	}
}

func (f *MoneyFormatter) Format(amount int64) string {
	return f.code + " " + f.printer.Sprintf("%d", amount)
}

// Code returns the ISO 4217 currency code.
func (f *MoneyFormatter) Code() string {
	return f.code
}
