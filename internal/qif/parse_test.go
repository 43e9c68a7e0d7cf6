package qif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

const sampleQIF = `!Type:Bank
D19/07'2004
T1,250.00
POpening Balance
L[Checking]
^
D31/12/99
T-25.50
PGrocer
MWeekly shop
LGroceries
^
D5/ 1/00
U42.00
PRefund
^
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleQIF), ledger.DateFormatDDMMYY, '.')
	require.NoError(t, err)

	assert.Equal(t, "Bank", f.Type)
	require.Len(t, f.Records, 3)

	first := f.Records[0]
	assert.Equal(t, model.DateInt(20040719), first.Date)
	assert.Equal(t, "1250.00", first.Amount.StringFixed(2))
	assert.Equal(t, "Opening Balance", first.Payee)
	assert.Equal(t, "[Checking]", first.Category)

	second := f.Records[1]
	assert.Equal(t, model.DateInt(19991231), second.Date, "two-digit years >= 70 are 19xx")
	assert.Equal(t, "-25.50", second.Amount.StringFixed(2))
	assert.Equal(t, "Weekly shop", second.Memo)
	assert.Equal(t, "Groceries", second.Category)

	third := f.Records[2]
	assert.Equal(t, model.DateInt(20000105), third.Date, "two-digit years < 70 are 20xx")
	assert.Equal(t, "42.00", third.Amount.StringFixed(2))
}

func TestParseMMDDYY(t *testing.T) {
	f, err := Parse(strings.NewReader("D07/19'2004\nT1.00\nPx\n^\n"), ledger.DateFormatMMDDYY, '.')
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	assert.Equal(t, model.DateInt(20040719), f.Records[0].Date)
}

func TestParseCommaDecimalSeparator(t *testing.T) {
	f, err := Parse(strings.NewReader("D19/07'2004\nT1.250,75\nPx\n^\n"), ledger.DateFormatDDMMYY, ',')
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	assert.Equal(t, "1250.75", f.Records[0].Amount.StringFixed(2))
}

func TestParseAccountBlock(t *testing.T) {
	doc := "!Account\nNChecking\nTBank\nDEveryday account\n^\n!Type:Bank\nD19/07'2004\nT1.00\nPx\n^\n"
	f, err := Parse(strings.NewReader(doc), ledger.DateFormatDDMMYY, '.')
	require.NoError(t, err)

	require.Len(t, f.Accounts, 1)
	assert.Equal(t, "Checking", f.Accounts[0].Name)
	assert.Equal(t, "Bank", f.Accounts[0].Type)
	assert.Equal(t, "Everyday account", f.Accounts[0].Description)
	assert.Len(t, f.Records, 1)
}

func TestParseCRLFAndTrailingRecord(t *testing.T) {
	doc := "!Type:Bank\r\nD19/07'2004\r\nT1.00\r\nPx\r\n"
	f, err := Parse(strings.NewReader(doc), ledger.DateFormatDDMMYY, '.')
	require.NoError(t, err)
	require.Len(t, f.Records, 1, "an unterminated final record is kept")
	assert.Equal(t, "x", f.Records[0].Payee)
}

func TestParseBadDate(t *testing.T) {
	_, err := Parse(strings.NewReader("DNOTADATE\n^\n"), ledger.DateFormatDDMMYY, '.')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseBadAmount(t *testing.T) {
	_, err := Parse(strings.NewReader("D19/07'2004\nTabc\n^\n"), ledger.DateFormatDDMMYY, '.')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QIF amount")
}
