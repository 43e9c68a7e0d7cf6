package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmigrate/mdmigrate/internal/config"
	"github.com/mdmigrate/mdmigrate/internal/ledger/memory"
	"github.com/mdmigrate/mdmigrate/internal/meta"
	"github.com/mdmigrate/mdmigrate/internal/model"
	"github.com/mdmigrate/mdmigrate/internal/qif"
	"github.com/mdmigrate/mdmigrate/internal/runlog"
	"github.com/mdmigrate/mdmigrate/internal/sidebar"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func seedStaleBook(t *testing.T) *memory.Book {
	t.Helper()
	book := memory.NewBook("USD")
	old, err := book.NewAccount(model.AccountTypeBank)
	require.NoError(t, err)
	old.SetName("Old Account")
	return book
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "accounts.json", `{
		"accounts": [{"name": "Brokerage", "type": "investment"}]
	}`)
	// The investment account has a plain deposit and no file exists
	// for its cash sibling.
	write(t, dir, "Brokerage.qif", "!Type:Bank\nD19/07'2004\nT1000.00\nPInitial deposit\n^\n")
	// An undeclared bank account is inferred from its export file.
	write(t, dir, "Checking.qif", "!Type:Bank\nD20/07'2004\nT250.00\nPOpening Balance\nL[Checking]\n^\n")

	book := seedStaleBook(t)
	runner := NewRunner(dir, config.Default(), qif.NewImporter())
	require.NoError(t, runner.Run(book))

	// The previous contents were wiped.
	_, ok := book.AccountByName("Old Account")
	assert.False(t, ok)

	brokerage, ok := book.AccountByName("Brokerage")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeInvestment, brokerage.Type())
	assert.Len(t, book.Transactions().ForAccount(brokerage), 1)
	assert.Equal(t, model.DateInt(20040719).Millis(), brokerage.CreationDate())

	// The cash sibling exists and is empty.
	cash, ok := book.AccountByName("Brokerage (Cash)")
	require.True(t, ok)
	assert.Empty(t, book.Transactions().ForAccount(cash))

	// The inferred account was created and imported, with the
	// opening-balance self-transfer stripped.
	checking, ok := book.AccountByName("Checking")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeBank, checking.Type())
	assert.Len(t, book.Transactions().ForAccount(checking), 1)

	// Per-account outcomes were logged.
	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Brokerage", entries[0].Account)
	assert.Equal(t, "imported", entries[0].Action)
	assert.Equal(t, "Brokerage (Cash)", entries[1].Account)
	assert.Equal(t, "skipped-no-file", entries[1].Action)
	assert.Equal(t, "Checking", entries[2].Account)

	// The sidebar list was exported.
	assert.FileExists(t, filepath.Join(dir, sidebar.DefaultFile))
}

func TestRunMergesCashIntoInvestment(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "accounts.json", `{
		"accounts": [{"name": "Brokerage", "type": "investment"}]
	}`)
	write(t, dir, "Brokerage (Cash).qif",
		"!Type:Bank\nD19/07'2004\nT-40.00\nPAccount fee\nLFees\n^\n")

	book := memory.NewBook("USD")
	runner := NewRunner(dir, config.Default(), qif.NewImporter())
	require.NoError(t, runner.Run(book))

	brokerage, ok := book.AccountByName("Brokerage")
	require.True(t, ok)
	assert.Len(t, book.Transactions().ForAccount(brokerage), 1, "the fee moved into the investment account")

	_, ok = book.AccountByName("Brokerage (Cash)")
	assert.False(t, ok, "the emptied cash account is deleted")
}

func TestRunCreatesCurrencies(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "accounts.json", `{
		"accounts": [{"name": "Euro Savings", "currency": "EUX"}],
		"currencies": [{"code": "EUX", "name": "Euro Custom", "rate": 0.85, "decimal_places": 2}]
	}`)

	book := memory.NewBook("USD")
	runner := NewRunner(dir, config.Default(), qif.NewImporter())
	require.NoError(t, runner.Run(book))

	cur, ok := book.Currencies().ByID("EUX")
	require.True(t, ok)
	assert.Equal(t, "0.85", cur.Rate().String())

	savings, ok := book.AccountByName("Euro Savings")
	require.True(t, ok)
	assert.Equal(t, cur, savings.Currency())
}

func TestRunAbortsBeforeWipeOnMissingMetadata(t *testing.T) {
	dir := t.TempDir()

	book := seedStaleBook(t)
	runner := NewRunner(dir, config.Default(), qif.NewImporter())
	err := runner.Run(book)
	require.Error(t, err)

	var cfgErr *meta.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, ok := book.AccountByName("Old Account")
	assert.True(t, ok, "the book is untouched when the metadata cannot load")
}

func TestRunNothingToMigrateAfterWipe(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "accounts.json", `{}`)

	book := seedStaleBook(t)
	runner := NewRunner(dir, config.Default(), qif.NewImporter())
	err := runner.Run(book)
	assert.ErrorIs(t, err, meta.ErrNothingToMigrate)

	// The wipe had already happened: the documented sequencing
	// hazard of the run ordering.
	_, ok := book.AccountByName("Old Account")
	assert.False(t, ok)
}
