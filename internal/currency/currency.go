// Package currency maps pricing countries to the currency they are
// displayed in.
package currency

import "github.com/readyiolab/GDL-BACKEND/internal/entity"

const (
	DefaultCode   = "USD"
	DefaultSymbol = "$"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"BOB": "Bs.",
	"BGN": "лв",
	"CZK": "Kč",
	"DKK": "kr",
	"HUF": "Ft",
	"INR": "₹",
	"JPY": "¥",
	"MXN": "MX$",
	"NOK": "kr",
	"PEN": "S/.",
	"PLN": "zł",
	"RON": "lei",
	"RUB": "₽",
	"SEK": "kr",
	"GBP": "£",
	"COP": "$",
}

// Keys match the country values stored in tbl_productpricing, which mixes
// full names with the UK and US codes.
var countryCurrencies = map[string]string{
	"Austria":         "EUR",
	"Belgium":         "EUR",
	"Bolivia":         "BOB",
	"Bulgaria":        "BGN",
	"Canada":          "CAD", // no symbol entry, renders as $
	"Colombia":        "COP",
	"Croatia":         "EUR",
	"Cyprus":          "EUR",
	"Czech Republic":  "CZK",
	"Denmark":         "DKK",
	"Estonia":         "EUR",
	"Finland":         "EUR",
	"France":          "EUR",
	"Germany":         "EUR",
	"Greece":          "EUR",
	"Hungary":         "HUF",
	"India":           "INR",
	"Ireland":         "EUR",
	"Italy":           "EUR",
	"Japan":           "JPY",
	"Malta":           "EUR",
	"Mexico":          "MXN",
	"Netherlands":     "EUR",
	"Norway":          "NOK",
	"Peru":            "PEN",
	"Poland":          "PLN",
	"Portugal":        "EUR",
	"Romania":         "RON",
	"Russia":          "RUB",
	"Singapore":       "USD",
	"Slovak Republic": "EUR",
	"Slovenia":        "EUR",
	"Spain":           "EUR",
	"Sweden":          "SEK",
	"UK":              "GBP",
	"US":              "USD",
}

// Resolve returns the currency code and display symbol for a country key.
// Unknown countries fall back to USD and unknown codes to "$".
func Resolve(country string) entity.Currency {
	code, ok := countryCurrencies[country]
	if !ok {
		code = DefaultCode
	}
	symbol, ok := symbols[code]
	if !ok {
		symbol = DefaultSymbol
	}
	return entity.Currency{Code: code, Symbol: symbol}
}

// Symbol returns the display symbol for a currency code.
func Symbol(code string) (string, bool) {
	s, ok := symbols[code]
	return s, ok
}
