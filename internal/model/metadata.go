package model

import "github.com/shopspring/decimal"

// AccountSpec describes one account to create, as declared in the
// migration metadata file. Name is required; everything else is
// optional. Names must be unique within a run: a collision is not
// detected and the later account wins in the book's name index.
type AccountSpec struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Bank       string `json:"bank,omitempty"`
	Number     string `json:"number,omitempty"`
	BankID     string `json:"bank id,omitempty"`
	Currency   string `json:"currency,omitempty"`
	CreateDate string `json:"create date,omitempty"` // ISO date, e.g. "2004-07-19"
}

// CurrencySpec describes a custom currency to create. Rate is the
// value of one base-currency unit expressed in the new currency and
// defaults to 1; DecimalPlaces defaults to 2 when omitted.
type CurrencySpec struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Rate          decimal.Decimal `json:"rate,omitempty"`
	DecimalPlaces *int            `json:"decimal_places,omitempty"`
	Prefix        string          `json:"prefix,omitempty"`
	Suffix        string          `json:"suffix,omitempty"`
}

// EffectiveRate returns the declared rate, or 1 when omitted.
func (c CurrencySpec) EffectiveRate() decimal.Decimal {
	if c.Rate.IsZero() {
		return decimal.NewFromInt(1)
	}
	return c.Rate
}

// EffectiveDecimalPlaces returns the declared decimal places, or 2
// when omitted.
func (c CurrencySpec) EffectiveDecimalPlaces() int {
	if c.DecimalPlaces == nil {
		return 2
	}
	return *c.DecimalPlaces
}

// Metadata is the top-level shape of the accounts.json migration
// metadata file. An absent "limit accounts" list means no filter.
type Metadata struct {
	Accounts      []AccountSpec  `json:"accounts"`
	Currencies    []CurrencySpec `json:"currencies,omitempty"`
	LimitAccounts []string       `json:"limit accounts,omitempty"`
}
