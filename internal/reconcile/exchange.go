package reconcile

import (
	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
)

// MergeAllExchanges runs exchange deduplication over every account
// whose currency differs from the book's base currency.
func MergeAllExchanges(book ledger.Book, accounts []ledger.Account) error {
	base := book.Currencies().Base()
	for _, a := range accounts {
		if a.Currency() == base {
			continue
		}
		if err := MergeExchanges(book, a); err != nil {
			return err
		}
	}
	return nil
}

// MergeExchanges deduplicates cross-currency transfer pairs in a
// foreign-currency account. Importing both sides of an exchange
// produces two transactions for one transfer: a parent entered in the
// foreign account, and the foreign-side leg of the parent entered in
// the base account. For every matching pair, the leg keeps the
// foreign amount of the locally entered parent and the local parent
// is deleted, leaving the base-side entry authoritative.
//
// Matching is a full parent x leg cross product, quadratic in the
// account's transaction count by design.
func MergeExchanges(book ledger.Book, acct ledger.Account) error {
	txns := book.Transactions().ForAccount(acct)
	var parents, legs []ledger.Transaction
	for _, t := range txns {
		if t.IsParent() {
			parents = append(parents, t)
		} else {
			legs = append(legs, t)
		}
	}

	log.Infof("merging exchanges for %s: %d parents, %d legs", acct.Name(), len(parents), len(legs))
	for _, local := range parents {
		for _, remote := range legs {
			if !isExchangeDupe(local, remote) {
				continue
			}
			remote.SetValue(local.Value())
			if err := book.Transactions().Remove(local); err != nil {
				return err
			}
			if err := remote.ParentTxn().Sync(); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// isExchangeDupe reports whether a locally entered parent and a
// remotely owned leg describe the same exchange: same memo between
// the local parent and the remote's counterpart, identical
// description and date, matching leg counts, and the same
// counter-account on both sides.
func isExchangeDupe(local, remote ledger.Transaction) bool {
	if local.OtherCount() == 0 || remote.OtherCount() == 0 {
		return false
	}
	if local.OtherCount() != remote.OtherCount() {
		return false
	}
	if local.DateInt() != remote.DateInt() {
		return false
	}
	if local.Description() != remote.Description() {
		return false
	}
	if local.Memo() != remote.Other(0).Memo() {
		return false
	}
	return remote.Other(0).Account() == local.Other(0).Account()
}
