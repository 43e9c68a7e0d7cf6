// Package migrate sequences a full from-scratch ledger migration.
package migrate

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/config"
	"github.com/mdmigrate/mdmigrate/internal/importer"
	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/meta"
	"github.com/mdmigrate/mdmigrate/internal/provision"
	"github.com/mdmigrate/mdmigrate/internal/reconcile"
	"github.com/mdmigrate/mdmigrate/internal/runlog"
	"github.com/mdmigrate/mdmigrate/internal/sidebar"
)

// Runner holds everything a migration run needs: the working
// directory with the metadata and export files, the run options, and
// the bulk importer.
type Runner struct {
	Dir      string
	Config   *config.Config
	Importer ledger.Importer
}

// NewRunner creates a Runner over a migration directory.
func NewRunner(dir string, cfg *config.Config, imp ledger.Importer) *Runner {
	return &Runner{Dir: dir, Config: cfg, Importer: imp}
}

// Run executes the migration against book: create declared currencies,
// wipe all existing accounts and transactions, resolve the account
// manifest, provision accounts, import each account's transactions,
// deduplicate cross-currency transfers, and fold cash siblings into
// their investment accounts.
//
// The wipe is unconditional and irreversible. A failure after it
// leaves the book partially populated; the run is designed to be
// repeated from scratch after the input is fixed.
func (r *Runner) Run(book ledger.Book) error {
	start := time.Now()

	md, err := meta.Load(r.Dir, r.Config.MetadataFile)
	if err != nil {
		return err
	}

	if err := provision.CreateCurrencies(book, md.Currencies); err != nil {
		return err
	}

	if err := deleteAllAccounts(book); err != nil {
		return fmt.Errorf("deleting existing accounts: %w", err)
	}
	log.Infof("deleted existing accounts in %s", time.Since(start))

	manifest, err := meta.LoadAccounts(md, r.Dir, r.Config.Extension)
	if err != nil {
		log.Errorf("error resolving accounts: %v", err)
		return err
	}
	specs := manifest.All()
	log.Infof("migrating %d accounts (%d declared, %d inferred)",
		len(specs), len(manifest.Declared), len(manifest.Inferred))

	pairs, err := provision.CreateAccounts(book, specs)
	if err != nil {
		return err
	}
	accounts := provision.Flatten(pairs)

	adapter := &importer.Adapter{
		Dir:              r.Dir,
		Extension:        r.Config.Extension,
		DateFormat:       r.Config.QIFDateFormat(),
		DecimalSeparator: r.Config.Separator(),
		Importer:         r.Importer,
		KeepRepaired:     r.Config.KeepRepaired,
	}
	entries := make([]runlog.Entry, 0, len(accounts))
	for _, acct := range accounts {
		outcome, err := adapter.ImportAccount(book, acct)
		if err != nil {
			return err
		}
		entries = append(entries, runlog.Entry{
			Timestamp: time.Now().UTC(),
			Account:   acct.Name(),
			Action:    string(outcome),
		})
	}
	if err := runlog.Append(r.Dir, entries); err != nil {
		return fmt.Errorf("writing migration log: %w", err)
	}

	if err := reconcile.MergeAllExchanges(book, accounts); err != nil {
		return fmt.Errorf("merging exchanges: %w", err)
	}
	if err := reconcile.MoveCash(book, pairs); err != nil {
		return fmt.Errorf("moving cash: %w", err)
	}

	if err := sidebar.Export(book, filepath.Join(r.Dir, sidebar.DefaultFile)); err != nil {
		return err
	}

	log.Infof("completed in %s", time.Since(start))
	return nil
}

// deleteAllAccounts wipes every transaction and account from the
// book, allowing for a fresh import.
func deleteAllAccounts(book ledger.Book) error {
	if err := book.Transactions().RemoveAll(); err != nil {
		return err
	}
	for _, a := range book.Accounts() {
		if err := a.Delete(); err != nil {
			return err
		}
	}
	return nil
}
