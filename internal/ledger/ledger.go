// Package ledger defines the interface to the host application's
// financial data store. The migration logic only ever talks to these
// interfaces; the host's real object model (or the in-memory stand-in
// under ledger/memory) sits behind them.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mdmigrate/mdmigrate/internal/model"
)

// Account is an opaque handle to a ledger account. Mutations take
// effect immediately in the model; Sync commits them to the store.
type Account interface {
	Name() string
	SetName(name string)
	Type() model.AccountType
	BankName() string
	SetBankName(name string)
	BankAccountNumber() string
	SetBankAccountNumber(number string)
	BankID() string
	SetBankID(id string)
	Currency() Currency
	SetCurrency(c Currency)
	// CreationDate is milliseconds since the Unix epoch.
	CreationDate() int64
	SetCreationDate(millis int64)
	Sync() error
	Delete() error
}

// Transaction is an opaque handle to a ledger transaction. A parent
// transaction owns one or more splits; a split's Other(0) is its
// parent, while a parent's Other(i) is its i-th split.
type Transaction interface {
	DateInt() model.DateInt
	Description() string
	Memo() string
	Value() decimal.Decimal
	SetValue(v decimal.Decimal)
	Account() Account
	SetAccount(a Account)
	IsParent() bool
	// ParentTxn returns the owning parent transaction, or the
	// transaction itself if it is a parent.
	ParentTxn() Transaction
	OtherCount() int
	Other(i int) Transaction
	// IsTransferTo reports whether the transaction's counter side
	// lands in the given account.
	IsTransferTo(a Account) bool
	Sync() error
}

// TransactionSet enumerates and removes transactions book-wide.
type TransactionSet interface {
	// All returns every transaction, parents and splits alike.
	All() []Transaction
	// ForAccount returns every transaction owned by the account,
	// parents and splits alike.
	ForAccount(a Account) []Transaction
	Remove(t Transaction) error
	RemoveAll() error
}

// Currency is an opaque handle to a ledger currency. The store keeps
// the rate scaled by the currency's minor unit, so DecimalPlaces must
// be set before Rate or the rate comes out rescaled.
type Currency interface {
	ID() string
	Name() string
	DecimalPlaces() int
	SetDecimalPlaces(n int)
	// Rate is the value of one base-currency unit in this currency.
	Rate() decimal.Decimal
	SetRate(r decimal.Decimal)
	Prefix() string
	SetPrefix(p string)
	Suffix() string
	SetSuffix(s string)
	Sync() error
}

// CurrencyTable is the book's currency registry.
type CurrencyTable interface {
	Base() Currency
	ByID(id string) (Currency, bool)
	Create(code, name string) (Currency, error)
}

// TxnSplit describes one split of a transaction to create.
type TxnSplit struct {
	Account Account
	Value   decimal.Decimal
	Memo    string
}

// TxnEntry describes a parent transaction and its splits to create.
type TxnEntry struct {
	Account     Account
	Date        model.DateInt
	Description string
	Memo        string
	Value       decimal.Decimal
	Splits      []TxnSplit
}

// Book is the top-level handle to the financial data store.
type Book interface {
	Accounts() []Account
	AccountByName(name string) (Account, bool)
	NewAccount(t model.AccountType) (Account, error)
	AddTransaction(e TxnEntry) (Transaction, error)
	Transactions() TransactionSet
	Currencies() CurrencyTable
}
