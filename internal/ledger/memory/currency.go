package memory

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
)

// currency stores its rate scaled by the currency's minor unit, the
// way the host does. Changing the decimal places does not rescale the
// stored value, so the rate must be set after the places.
type currency struct {
	code   string
	name   string
	places int
	raw    decimal.Decimal // rate * 10^places
	prefix string
	suffix string
}

func newCurrency(code, name string) *currency {
	c := &currency{code: code, name: name, places: 2}
	if known := money.GetCurrency(code); known != nil {
		c.places = known.Fraction
		c.prefix = known.Grapheme
	}
	c.raw = decimal.NewFromInt(1).Shift(int32(c.places))
	return c
}

func (c *currency) ID() string   { return c.code }
func (c *currency) Name() string { return c.name }

func (c *currency) DecimalPlaces() int     { return c.places }
func (c *currency) SetDecimalPlaces(n int) { c.places = n }

func (c *currency) Rate() decimal.Decimal {
	return c.raw.Shift(int32(-c.places))
}

func (c *currency) SetRate(r decimal.Decimal) {
	c.raw = r.Shift(int32(c.places))
}

func (c *currency) Prefix() string     { return c.prefix }
func (c *currency) SetPrefix(p string) { c.prefix = p }
func (c *currency) Suffix() string     { return c.suffix }
func (c *currency) SetSuffix(s string) { c.suffix = s }

// Sync is a no-op: memory mutations are already visible.
func (c *currency) Sync() error { return nil }

type currencyTable struct {
	base *currency
	all  []*currency
	byID map[string]*currency
}

func newCurrencyTable(baseCode string) *currencyTable {
	t := &currencyTable{byID: make(map[string]*currency)}
	base := newCurrency(baseCode, baseCode)
	t.base = base
	t.all = append(t.all, base)
	t.byID[baseCode] = base
	return t
}

func (t *currencyTable) Base() ledger.Currency { return t.base }

func (t *currencyTable) ByID(id string) (ledger.Currency, bool) {
	c, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return c, true
}

func (t *currencyTable) Create(code, name string) (ledger.Currency, error) {
	c := newCurrency(code, name)
	t.all = append(t.all, c)
	t.byID[code] = c
	return c, nil
}
