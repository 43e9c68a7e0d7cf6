package memory

import (
	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

type account struct {
	book       *Book
	name       string
	typ        model.AccountType
	bankName   string
	bankNumber string
	bankID     string
	currency   ledger.Currency
	createdMs  int64
}

func (a *account) Name() string { return a.name }

func (a *account) SetName(name string) {
	if a.book.byName[a.name] == a {
		delete(a.book.byName, a.name)
	}
	a.name = name
	// Last write wins on a name collision; the earlier account stays
	// in the book but drops out of the index.
	a.book.byName[name] = a
}

func (a *account) Type() model.AccountType { return a.typ }

func (a *account) BankName() string              { return a.bankName }
func (a *account) SetBankName(name string)       { a.bankName = name }
func (a *account) BankAccountNumber() string     { return a.bankNumber }
func (a *account) SetBankAccountNumber(n string) { a.bankNumber = n }
func (a *account) BankID() string                { return a.bankID }
func (a *account) SetBankID(id string)           { a.bankID = id }

func (a *account) Currency() ledger.Currency     { return a.currency }
func (a *account) SetCurrency(c ledger.Currency) { a.currency = c }

func (a *account) CreationDate() int64          { return a.createdMs }
func (a *account) SetCreationDate(millis int64) { a.createdMs = millis }

// Sync is a no-op: memory mutations are already visible.
func (a *account) Sync() error { return nil }

// Delete removes the account from the book. Transactions that still
// reference it are left alone, as the host does.
func (a *account) Delete() error {
	a.book.removeAccount(a)
	return nil
}
