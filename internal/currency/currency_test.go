package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readyiolab/GDL-BACKEND/internal/entity"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		country  string
		expected entity.Currency
	}{
		{name: "us", country: "US", expected: entity.Currency{Code: "USD", Symbol: "$"}},
		{name: "uk", country: "UK", expected: entity.Currency{Code: "GBP", Symbol: "£"}},
		{name: "euro_country", country: "Germany", expected: entity.Currency{Code: "EUR", Symbol: "€"}},
		{name: "india", country: "India", expected: entity.Currency{Code: "INR", Symbol: "₹"}},
		{name: "singapore_priced_in_usd", country: "Singapore", expected: entity.Currency{Code: "USD", Symbol: "$"}},
		{name: "code_without_symbol", country: "Canada", expected: entity.Currency{Code: "CAD", Symbol: "$"}},
		{name: "unknown_country", country: "Atlantis", expected: entity.Currency{Code: "USD", Symbol: "$"}},
		{name: "empty_key", country: "", expected: entity.Currency{Code: "USD", Symbol: "$"}},
		{name: "iso_code_not_in_table", country: "IN", expected: entity.Currency{Code: "USD", Symbol: "$"}},
		{name: "case_sensitive", country: "germany", expected: entity.Currency{Code: "USD", Symbol: "$"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.country))
		})
	}
}

func TestResolveNeverReturnsEmpty(t *testing.T) {
	for country := range countryCurrencies {
		got := Resolve(country)
		assert.NotEmpty(t, got.Code, country)
		assert.NotEmpty(t, got.Symbol, country)
	}
}

func TestSymbol(t *testing.T) {
	s, ok := Symbol("JPY")
	assert.True(t, ok)
	assert.Equal(t, "¥", s)

	_, ok = Symbol("CAD")
	assert.False(t, ok)
}
