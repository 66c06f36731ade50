package domain

// Currency identifies the money a product is priced in. Bids must be placed
// in the product's currency.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyRON Currency = "RON"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// Valid reports whether the currency is one of the supported values.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyRON, CurrencyUSD, CurrencyGBP:
		return true
	}
	return false
}
