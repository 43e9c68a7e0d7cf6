package ledger

// DateFormat selects how the importer reads transaction dates.
type DateFormat string

const (
	DateFormatDDMMYY DateFormat = "ddmmyy"
	DateFormatMMDDYY DateFormat = "mmddyy"
)

// ImportMode selects how the importer treats category references.
type ImportMode int

const (
	// ImportModeTransfer resolves bracketed categories to transfer
	// counter-accounts, creating them when missing.
	ImportModeTransfer ImportMode = iota
	// ImportModePlain imports categories as plain category accounts
	// without transfer linking.
	ImportModePlain
)

// ImportOptions carries the fixed parameters of a bulk import.
type ImportOptions struct {
	DateFormat       DateFormat
	DecimalSeparator rune
	Currency         Currency
	Target           Account
	Mode             ImportMode
	// AccountsOnly imports account definitions and skips all
	// transactions.
	AccountsOnly bool
}

// Importer loads a transaction export file into a book.
type Importer interface {
	Import(book Book, path string, opts ImportOptions) error
}
