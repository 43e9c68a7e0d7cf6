package qif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/ledger/memory"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

func writeQIF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.qif")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaultOpts(target ledger.Account) ledger.ImportOptions {
	return ledger.ImportOptions{
		DateFormat:       ledger.DateFormatDDMMYY,
		DecimalSeparator: '.',
		Target:           target,
		Mode:             ledger.ImportModeTransfer,
	}
}

func TestImportCreatesTransactions(t *testing.T) {
	book := memory.NewBook("USD")
	checking, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	checking.SetName("Checking")

	path := writeQIF(t, "!Type:Bank\nD19/07'2004\nT-25.50\nPGrocer\nMWeekly shop\nLGroceries\n^\n")
	require.NoError(t, NewImporter().Import(book, path, defaultOpts(checking)))

	txns := book.Transactions().ForAccount(checking)
	require.Len(t, txns, 1)
	parent := txns[0]
	assert.True(t, parent.IsParent())
	assert.Equal(t, model.DateInt(20040719), parent.DateInt())
	assert.Equal(t, "Grocer", parent.Description())
	assert.Equal(t, "Weekly shop", parent.Memo())
	assert.Equal(t, "-25.50", parent.Value().StringFixed(2))

	// The category became an expense account holding the counter leg.
	groceries, ok := book.AccountByName("Groceries")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeExpense, groceries.Type())
	require.Equal(t, 1, parent.OtherCount())
	assert.Equal(t, groceries, parent.Other(0).Account())
	assert.Equal(t, "25.50", parent.Other(0).Value().StringFixed(2))
}

func TestImportTransferMode(t *testing.T) {
	book := memory.NewBook("USD")
	checking, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	checking.SetName("Checking")

	path := writeQIF(t, "!Type:Bank\nD19/07'2004\nT-500.00\nPTransfer out\nL[Savings]\n^\n")
	require.NoError(t, NewImporter().Import(book, path, defaultOpts(checking)))

	// The bracketed category created a bank counter-account.
	savings, ok := book.AccountByName("Savings")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeBank, savings.Type())

	txns := book.Transactions().ForAccount(checking)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].IsTransferTo(savings))
}

func TestImportExistingCounterAccountReused(t *testing.T) {
	book := memory.NewBook("USD")
	checking, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	checking.SetName("Checking")
	savings, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	savings.SetName("Savings")

	path := writeQIF(t, "D19/07'2004\nT-500.00\nPx\nL[Savings]\n^\nD20/07'2004\nT-1.00\nPy\nL[Savings]\n^\n")
	require.NoError(t, NewImporter().Import(book, path, defaultOpts(checking)))

	assert.Len(t, book.Accounts(), 2, "no duplicate counter-account is created")
}

func TestImportIncomeCategory(t *testing.T) {
	book := memory.NewBook("USD")
	checking, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	checking.SetName("Checking")

	path := writeQIF(t, "D19/07'2004\nT3500.00\nPAcme\nLSalary\n^\n")
	require.NoError(t, NewImporter().Import(book, path, defaultOpts(checking)))

	salary, ok := book.AccountByName("Salary")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeIncome, salary.Type())
}

func TestImportAccountsOnly(t *testing.T) {
	book := memory.NewBook("USD")

	opts := ledger.ImportOptions{
		DateFormat:       ledger.DateFormatDDMMYY,
		DecimalSeparator: '.',
		Mode:             ledger.ImportModeTransfer,
		AccountsOnly:     true,
	}
	path := writeQIF(t, "!Account\nNVisa\nTCCard\n^\n!Type:CCard\nD19/07'2004\nT-1.00\nPx\n^\n")
	require.NoError(t, NewImporter().Import(book, path, opts))

	visa, ok := book.AccountByName("Visa")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeCreditCard, visa.Type())
	assert.Empty(t, book.Transactions().All())
}

func TestImportNoTarget(t *testing.T) {
	book := memory.NewBook("USD")
	path := writeQIF(t, "D19/07'2004\nT-1.00\nPx\n^\n")
	err := NewImporter().Import(book, path, ledger.ImportOptions{DateFormat: ledger.DateFormatDDMMYY, DecimalSeparator: '.'})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target account")
}
