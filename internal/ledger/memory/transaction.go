package memory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

// transaction is either a parent (parent == nil, owns splits) or a
// split leg of its parent.
type transaction struct {
	book   *Book
	parent *transaction
	splits []*transaction
	acct   ledger.Account
	date   model.DateInt
	desc   string
	memo   string
	value  decimal.Decimal
}

func (t *transaction) DateInt() model.DateInt { return t.date }
func (t *transaction) Description() string    { return t.desc }
func (t *transaction) Memo() string           { return t.memo }

func (t *transaction) Value() decimal.Decimal     { return t.value }
func (t *transaction) SetValue(v decimal.Decimal) { t.value = v }

func (t *transaction) Account() ledger.Account     { return t.acct }
func (t *transaction) SetAccount(a ledger.Account) { t.acct = a }

func (t *transaction) IsParent() bool { return t.parent == nil }

func (t *transaction) ParentTxn() ledger.Transaction {
	if t.parent != nil {
		return t.parent
	}
	return t
}

// OtherCount mirrors the host: a parent's others are its splits, a
// split's single other is its parent.
func (t *transaction) OtherCount() int {
	if t.parent != nil {
		return 1
	}
	return len(t.splits)
}

func (t *transaction) Other(i int) ledger.Transaction {
	if t.parent != nil {
		if i != 0 {
			panic(fmt.Sprintf("split has one other transaction, index %d requested", i))
		}
		return t.parent
	}
	return t.splits[i]
}

func (t *transaction) IsTransferTo(a ledger.Account) bool {
	if t.parent != nil {
		return t.parent.acct == a
	}
	for _, s := range t.splits {
		if s.acct == a {
			return true
		}
	}
	return false
}

// Sync is a no-op: memory mutations are already visible.
func (t *transaction) Sync() error { return nil }

type txnSet struct {
	book *Book
}

func (s *txnSet) All() []ledger.Transaction {
	var out []ledger.Transaction
	for _, p := range s.book.parents {
		out = append(out, p)
		for _, sp := range p.splits {
			out = append(out, sp)
		}
	}
	return out
}

func (s *txnSet) ForAccount(a ledger.Account) []ledger.Transaction {
	var out []ledger.Transaction
	for _, t := range s.All() {
		if t.Account() == a {
			out = append(out, t)
		}
	}
	return out
}

// Remove deletes a transaction. Removing a parent removes its splits
// with it; removing a split detaches only that leg.
func (s *txnSet) Remove(t ledger.Transaction) error {
	tx, ok := t.(*transaction)
	if !ok {
		return fmt.Errorf("foreign transaction %T", t)
	}
	if tx.parent == nil {
		s.book.removeParent(tx)
		return nil
	}
	p := tx.parent
	for i, sp := range p.splits {
		if sp == tx {
			p.splits = append(p.splits[:i], p.splits[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *txnSet) RemoveAll() error {
	s.book.parents = nil
	return nil
}
