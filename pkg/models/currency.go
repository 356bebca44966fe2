package models

// Currency pairs a display symbol with its ISO code.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies are the selectable currencies, keyed by ISO code. The
// symbol only affects display; no conversion happens anywhere.
var Currencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
}

// CurrencySymbol resolves a code to its symbol, falling back to the
// rupee sign for unknown codes.
func CurrencySymbol(code string) string {
	if c, ok := Currencies[code]; ok {
		return c.Symbol
	}
	return Currencies["INR"].Symbol
}
