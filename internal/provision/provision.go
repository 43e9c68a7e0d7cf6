// Package provision creates accounts and currencies from migration
// metadata.
package provision

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

// AccountPair is the result of provisioning one spec: the primary
// account, and the generated cash sibling when the primary is an
// investment account. The pairing is an explicit relation so that
// reconciliation does not have to infer it from list order.
type AccountPair struct {
	Primary ledger.Account
	Cash    ledger.Account // nil unless Primary is an investment account
}

// Accounts returns the pair's accounts in order, primary first.
func (p AccountPair) Accounts() []ledger.Account {
	if p.Cash == nil {
		return []ledger.Account{p.Primary}
	}
	return []ledger.Account{p.Primary, p.Cash}
}

// CreateAccount creates the account described by spec. An investment
// spec additionally yields a cash sibling named "<name> (Cash)" of the
// default bank type, carrying the same bank details.
func CreateAccount(book ledger.Book, spec model.AccountSpec) (AccountPair, error) {
	typ, err := model.ParseAccountType(spec.Type)
	if err != nil {
		return AccountPair{}, err
	}

	primary, err := newAccount(book, spec, typ)
	if err != nil {
		return AccountPair{}, err
	}
	pair := AccountPair{Primary: primary}

	if typ == model.AccountTypeInvestment {
		log.Infof("creating cash account for %s", spec.Name)
		cashSpec := spec
		cashSpec.Name += model.CashSuffix
		cashSpec.Type = ""
		cash, err := newAccount(book, cashSpec, model.AccountTypeBank)
		if err != nil {
			return AccountPair{}, err
		}
		pair.Cash = cash
	}
	return pair, nil
}

// CreateAccounts provisions every spec in order.
func CreateAccounts(book ledger.Book, specs []model.AccountSpec) ([]AccountPair, error) {
	pairs := make([]AccountPair, 0, len(specs))
	for _, spec := range specs {
		pair, err := CreateAccount(book, spec)
		if err != nil {
			return nil, fmt.Errorf("creating account %q: %w", spec.Name, err)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// Flatten turns pairs into the positional account list, each cash
// sibling immediately after its investment account.
func Flatten(pairs []AccountPair) []ledger.Account {
	var out []ledger.Account
	for _, p := range pairs {
		out = append(out, p.Accounts()...)
	}
	return out
}

func newAccount(book ledger.Book, spec model.AccountSpec, typ model.AccountType) (ledger.Account, error) {
	a, err := book.NewAccount(typ)
	if err != nil {
		return nil, err
	}
	a.SetName(spec.Name)
	if spec.Bank != "" {
		a.SetBankName(spec.Bank)
	}
	if spec.Number != "" {
		a.SetBankAccountNumber(spec.Number)
	}
	if spec.BankID != "" {
		a.SetBankID(spec.BankID)
	}
	if spec.Currency != "" {
		cur, ok := book.Currencies().ByID(spec.Currency)
		if !ok {
			return nil, fmt.Errorf("unknown currency %q", spec.Currency)
		}
		a.SetCurrency(cur)
	}
	if spec.CreateDate != "" {
		d, err := model.ParseDate(spec.CreateDate)
		if err != nil {
			return nil, err
		}
		a.SetCreationDate(d.Millis())
	}
	if err := a.Sync(); err != nil {
		return nil, err
	}
	return a, nil
}

// CreateCurrencies creates the custom currencies declared in the
// metadata. Field order matters to the host: the decimal places must
// be set before the exchange rate, because the store keeps the rate
// scaled by the minor unit. The rate is therefore always set last.
func CreateCurrencies(book ledger.Book, specs []model.CurrencySpec) error {
	for _, spec := range specs {
		cur, err := book.Currencies().Create(spec.Code, spec.Name)
		if err != nil {
			return fmt.Errorf("creating currency %q: %w", spec.Code, err)
		}
		cur.SetDecimalPlaces(spec.EffectiveDecimalPlaces())
		if spec.Prefix != "" {
			cur.SetPrefix(spec.Prefix)
		}
		if spec.Suffix != "" {
			cur.SetSuffix(spec.Suffix)
		}
		cur.SetRate(spec.EffectiveRate())
		if err := cur.Sync(); err != nil {
			return fmt.Errorf("syncing currency %q: %w", spec.Code, err)
		}
	}
	return nil
}
