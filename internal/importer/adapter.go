// Package importer drives the bulk transaction importer for one
// account at a time, repairing each export file first.
package importer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
	"github.com/mdmigrate/mdmigrate/internal/qif"
)

// Outcome classifies the result of importing one account.
type Outcome string

const (
	OutcomeImported      Outcome = "imported"
	OutcomeSkippedLoan   Outcome = "skipped-loan"
	OutcomeSkippedNoFile Outcome = "skipped-no-file"
)

// Adapter locates, repairs and imports per-account export files from a
// working directory.
type Adapter struct {
	Dir              string
	Extension        string // e.g. ".qif"
	DateFormat       ledger.DateFormat
	DecimalSeparator rune
	Importer         ledger.Importer
	// KeepRepaired leaves the repaired temp file next to the
	// original instead of removing it after import.
	KeepRepaired bool
}

// ImportAccount imports the transactions for one account from the
// export file named after its filesystem-safe name. Loan accounts and
// accounts without an export file are skipped with a notice, not an
// error; importer failures propagate. After a successful import the
// account's creation date is set to its earliest transaction date.
func (a *Adapter) ImportAccount(book ledger.Book, acct ledger.Account) (Outcome, error) {
	name := acct.Name()
	if acct.Type() == model.AccountTypeLoan {
		log.Infof("cannot import transactions for loan account %s", name)
		return OutcomeSkippedLoan, nil
	}

	path := filepath.Join(a.Dir, model.SafeName(name)+a.Extension)
	if _, err := os.Stat(path); err != nil {
		log.Infof("no transactions found for %s", name)
		return OutcomeSkippedNoFile, nil
	}

	repaired, err := qif.CorrectEncoding(path)
	if err != nil {
		return "", fmt.Errorf("repairing %s: %w", path, err)
	}
	if !a.KeepRepaired {
		defer os.Remove(repaired)
	}
	if err := qif.CorrectOpeningBalance(repaired, name); err != nil {
		return "", fmt.Errorf("repairing %s: %w", repaired, err)
	}

	opts := ledger.ImportOptions{
		DateFormat:       a.DateFormat,
		DecimalSeparator: a.DecimalSeparator,
		Currency:         acct.Currency(),
		Target:           acct,
		Mode:             ledger.ImportModeTransfer,
		AccountsOnly:     false,
	}
	if err := a.Importer.Import(book, repaired, opts); err != nil {
		return "", fmt.Errorf("importing %s: %w", name, err)
	}

	if first, ok := firstTxnDate(book, acct); ok {
		acct.SetCreationDate(first.Millis())
		if err := acct.Sync(); err != nil {
			return "", fmt.Errorf("syncing %s: %w", name, err)
		}
	}
	return OutcomeImported, nil
}

// firstTxnDate returns the earliest transaction date in the account.
func firstTxnDate(book ledger.Book, acct ledger.Account) (model.DateInt, bool) {
	var (
		first model.DateInt
		found bool
	)
	for _, t := range book.Transactions().ForAccount(acct) {
		if !found || t.DateInt() < first {
			first = t.DateInt()
			found = true
		}
	}
	return first, found
}
