package domain

import "fmt"

// Currency ISO code supported by the platform
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// Money is an integer amount of cents in a single currency
type Money struct {
	AmountCents int64
	Currency    Currency
}

// NewMoney rejects negative amounts
func NewMoney(amountCents int64, currency Currency) (Money, error) {
	if amountCents < 0 {
		return Money{}, fmt.Errorf("%w: amount must be non-negative, got %d", ErrInvalidMoney, amountCents)
	}
	return Money{AmountCents: amountCents, Currency: currency}, nil
}

// Format renders the amount with its currency symbol
func (m Money) Format() string {
	decimal := fmt.Sprintf("%d.%02d", m.AmountCents/100, m.AmountCents%100)
	switch m.Currency {
	case CurrencyUSD:
		return "$" + decimal
	case CurrencyGBP:
		return "£" + decimal
	default:
		return decimal + " €"
	}
}

// Equal reports value equality
func (m Money) Equal(other Money) bool {
	return m.AmountCents == other.AmountCents && m.Currency == other.Currency
}
