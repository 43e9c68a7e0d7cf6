package model

import (
	"fmt"
	"strings"
)

// AccountType classifies ledger accounts.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeSecurity   AccountType = "security"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeAsset      AccountType = "asset"
	AccountTypeLiability  AccountType = "liability"
	AccountTypeIncome     AccountType = "income"
	AccountTypeExpense    AccountType = "expense"
)

// CashSuffix is appended to an investment account's name to form the
// name of its cash sibling.
const CashSuffix = " (Cash)"

var accountTypes = map[string]AccountType{
	"bank":        AccountTypeBank,
	"credit_card": AccountTypeCreditCard,
	"investment":  AccountTypeInvestment,
	"security":    AccountTypeSecurity,
	"loan":        AccountTypeLoan,
	"asset":       AccountTypeAsset,
	"liability":   AccountTypeLiability,
	"income":      AccountTypeIncome,
	"expense":     AccountTypeExpense,
}

// InvalidAccountTypeError reports an account type name that does not
// resolve against the known types.
type InvalidAccountTypeError struct {
	Name string
}

func (e *InvalidAccountTypeError) Error() string {
	return fmt.Sprintf("invalid account type %q", e.Name)
}

// ParseAccountType resolves a metadata type name to an AccountType.
// The empty string resolves to "bank". Matching is case-insensitive and
// maps spaces to underscores ("credit card" -> credit_card).
func ParseAccountType(name string) (AccountType, error) {
	if name == "" {
		return AccountTypeBank, nil
	}
	key := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	t, ok := accountTypes[key]
	if !ok {
		return "", &InvalidAccountTypeError{Name: name}
	}
	return t, nil
}

// SafeName maps an account display name to its filesystem-safe form,
// used as the base name of the account's transaction export file.
func SafeName(name string) string {
	return strings.ReplaceAll(name, "*", "-")
}
