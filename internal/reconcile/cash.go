// Package reconcile merges provisioned cash siblings into their
// investment accounts and deduplicates cross-currency transfer pairs.
package reconcile

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
	"github.com/mdmigrate/mdmigrate/internal/provision"
)

// MoveCash merges each pair's cash account into its investment
// account and deletes the emptied cash account. Pairs without a cash
// sibling are left alone.
func MoveCash(book ledger.Book, pairs []provision.AccountPair) error {
	for _, p := range pairs {
		if p.Cash == nil || p.Primary.Type() != model.AccountTypeInvestment {
			continue
		}
		if err := mergeInvCash(book, p.Primary, p.Cash); err != nil {
			return fmt.Errorf("merging %s: %w", p.Cash.Name(), err)
		}
	}
	return nil
}

// PairAdjacent recovers investment/cash pairs from a flat positional
// account list: whenever an investment account is followed by another
// account, the follower is taken to be its cash sibling. A reordered
// list silently mispairs; prefer the pairs the provisioner returns.
func PairAdjacent(accounts []ledger.Account) []provision.AccountPair {
	var pairs []provision.AccountPair
	for i := 0; i+1 < len(accounts); i++ {
		if accounts[i].Type() != model.AccountTypeInvestment {
			continue
		}
		pairs = append(pairs, provision.AccountPair{
			Primary: accounts[i],
			Cash:    accounts[i+1],
		})
	}
	return pairs
}

// mergeInvCash moves the cash account's transactions into the
// investment account, skipping transfers into the investment account
// so the investment-side leg is not moved twice, then deletes the
// cash account.
func mergeInvCash(book ledger.Book, inv, cash ledger.Account) error {
	txns := book.Transactions().ForAccount(cash)
	if len(txns) == 0 {
		// A sibling that never saw a transaction file stays in place.
		log.Infof("no cash transactions to move for %s", cash.Name())
		return nil
	}
	log.Infof("moving cash transactions from %s into %s", cash.Name(), inv.Name())
	for _, t := range txns {
		if t.Account() != cash || t.IsTransferTo(inv) {
			continue
		}
		t.SetAccount(inv)
		if err := t.ParentTxn().Sync(); err != nil {
			return err
		}
	}
	return cash.Delete()
}
