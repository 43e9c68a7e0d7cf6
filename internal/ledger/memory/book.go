// Package memory is an in-memory implementation of the ledger
// interfaces, standing in for the host application's data store.
package memory

import (
	"errors"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

// Book is an in-memory ledger book.
type Book struct {
	accounts []*account
	byName   map[string]*account
	parents  []*transaction
	table    *currencyTable
}

// NewBook creates an empty book whose base currency has the given ISO
// code. Known ISO codes are seeded with their standard decimal places
// and symbol.
func NewBook(baseCurrency string) *Book {
	b := &Book{byName: make(map[string]*account)}
	b.table = newCurrencyTable(baseCurrency)
	return b
}

// Accounts returns the book's accounts in creation order.
func (b *Book) Accounts() []ledger.Account {
	out := make([]ledger.Account, len(b.accounts))
	for i, a := range b.accounts {
		out[i] = a
	}
	return out
}

// AccountByName returns the account registered under name. When two
// accounts were given the same name, the later one wins.
func (b *Book) AccountByName(name string) (ledger.Account, bool) {
	a, ok := b.byName[name]
	if !ok {
		return nil, false
	}
	return a, true
}

// NewAccount creates an empty account of the given type. The new
// account uses the base currency until one is assigned.
func (b *Book) NewAccount(t model.AccountType) (ledger.Account, error) {
	a := &account{book: b, typ: t, currency: b.table.base}
	b.accounts = append(b.accounts, a)
	return a, nil
}

// AddTransaction creates a parent transaction with its splits.
func (b *Book) AddTransaction(e ledger.TxnEntry) (ledger.Transaction, error) {
	if e.Account == nil {
		return nil, errors.New("transaction has no account")
	}
	p := &transaction{
		book:  b,
		acct:  e.Account,
		date:  e.Date,
		desc:  e.Description,
		memo:  e.Memo,
		value: e.Value,
	}
	for _, s := range e.Splits {
		p.splits = append(p.splits, &transaction{
			book:   b,
			parent: p,
			acct:   s.Account,
			date:   e.Date,
			desc:   e.Description,
			memo:   s.Memo,
			value:  s.Value,
		})
	}
	b.parents = append(b.parents, p)
	return p, nil
}

// Transactions returns the book's transaction set.
func (b *Book) Transactions() ledger.TransactionSet {
	return &txnSet{book: b}
}

// Currencies returns the book's currency table.
func (b *Book) Currencies() ledger.CurrencyTable {
	return b.table
}

func (b *Book) removeAccount(a *account) {
	for i, cur := range b.accounts {
		if cur == a {
			b.accounts = append(b.accounts[:i], b.accounts[i+1:]...)
			break
		}
	}
	if b.byName[a.name] == a {
		delete(b.byName, a.name)
	}
}

func (b *Book) removeParent(p *transaction) {
	for i, cur := range b.parents {
		if cur == p {
			b.parents = append(b.parents[:i], b.parents[i+1:]...)
			return
		}
	}
}
