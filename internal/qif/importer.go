package qif

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

// Importer is the built-in QIF implementation of ledger.Importer.
type Importer struct{}

// NewImporter creates a QIF importer.
func NewImporter() *Importer { return &Importer{} }

// Import parses the QIF file at path and loads its transactions into
// the target account. In transfer mode, bracketed categories become
// transfers to the named account, created as a bank account when
// missing; plain categories become expense or income accounts by the
// sign of the amount.
func (im *Importer) Import(book ledger.Book, path string, opts ledger.ImportOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening QIF file: %w", err)
	}
	defer f.Close()

	qf, err := Parse(f, opts.DateFormat, opts.DecimalSeparator)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, def := range qf.Accounts {
		if _, err := ensureAccount(book, def.Name, accountTypeFromQIF(def.Type)); err != nil {
			return err
		}
	}
	if opts.AccountsOnly {
		return nil
	}
	if opts.Target == nil {
		return errors.New("no target account for QIF import")
	}

	for i, rec := range qf.Records {
		entry := ledger.TxnEntry{
			Account:     opts.Target,
			Date:        rec.Date,
			Description: rec.Payee,
			Memo:        rec.Memo,
			Value:       rec.Amount,
		}
		if rec.Category != "" {
			other, err := im.resolveCategory(book, rec.Category, opts, rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
			entry.Splits = []ledger.TxnSplit{{
				Account: other,
				Value:   rec.Amount.Neg(),
				Memo:    rec.Memo,
			}}
		}
		if _, err := book.AddTransaction(entry); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}

func (im *Importer) resolveCategory(book ledger.Book, category string, opts ledger.ImportOptions, rec Record) (ledger.Account, error) {
	if name, ok := transferTarget(category); ok && opts.Mode == ledger.ImportModeTransfer {
		return ensureAccount(book, name, model.AccountTypeBank)
	}
	typ := model.AccountTypeExpense
	if rec.Amount.IsPositive() {
		typ = model.AccountTypeIncome
	}
	return ensureAccount(book, strings.Trim(category, "[]"), typ)
}

// transferTarget extracts the account name from a "[Name]" category.
func transferTarget(category string) (string, bool) {
	if strings.HasPrefix(category, "[") && strings.HasSuffix(category, "]") {
		return category[1 : len(category)-1], true
	}
	return "", false
}

func ensureAccount(book ledger.Book, name string, typ model.AccountType) (ledger.Account, error) {
	if a, ok := book.AccountByName(name); ok {
		return a, nil
	}
	a, err := book.NewAccount(typ)
	if err != nil {
		return nil, fmt.Errorf("creating account %q: %w", name, err)
	}
	a.SetName(name)
	if err := a.Sync(); err != nil {
		return nil, fmt.Errorf("syncing account %q: %w", name, err)
	}
	return a, nil
}

func accountTypeFromQIF(qifType string) model.AccountType {
	switch strings.ToLower(qifType) {
	case "ccard":
		return model.AccountTypeCreditCard
	case "invst":
		return model.AccountTypeInvestment
	case "oth a":
		return model.AccountTypeAsset
	case "oth l":
		return model.AccountTypeLiability
	default:
		return model.AccountTypeBank
	}
}
