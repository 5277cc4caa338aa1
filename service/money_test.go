package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFormatter(t *testing.T) {
	f := NewMoneyFormatter("en-US")
	assert.Equal(t, "USD", f.Code())
	assert.Equal(t, "USD 4,000,000", f.Format(4_000_000))
	assert.Equal(t, "USD 0", f.Format(0))
}

func TestMoneyFormatter_Indian(t *testing.T) {
	f := NewMoneyFormatter("en-IN")
	assert.Equal(t, "INR", f.Code())
	assert.Contains(t, f.Format(4_000_000), "INR ")
}

func TestMoneyFormatter_BadLocale(t *testing.T) {
	f := NewMoneyFormatter("not a locale!")
	assert.NotEmpty(t, f.Format(1_000))
}
