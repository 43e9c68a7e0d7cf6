package qif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/model"
)

// Record is one transaction record from a QIF file.
type Record struct {
	Date     model.DateInt
	Amount   decimal.Decimal
	Payee    string
	Memo     string
	Category string // "[Name]" denotes a transfer
	Number   string
}

// AccountDef is an account definition from a "!Account" block.
type AccountDef struct {
	Name        string
	Type        string
	Description string
}

// File is the parsed content of a QIF export.
type File struct {
	Type     string // from the last "!Type:" header
	Accounts []AccountDef
	Records  []Record
}

// Parse reads a QIF document. Dates are interpreted per the given
// format and amounts per the given decimal separator.
func Parse(r io.Reader, dateFormat ledger.DateFormat, decimalSep rune) (*File, error) {
	f := &File{}
	var (
		rec        Record
		acctDef    AccountDef
		inAccounts bool
		hasRec     bool
		lineNo     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "!") {
			switch {
			case strings.EqualFold(line, "!Account"):
				inAccounts = true
			case strings.HasPrefix(line, "!Type:"):
				inAccounts = false
				f.Type = strings.TrimPrefix(line, "!Type:")
			default:
				// Option and Clear directives carry no data.
			}
			continue
		}

		code, value := line[0], line[1:]
		if code == '^' {
			if inAccounts {
				if acctDef.Name != "" {
					f.Accounts = append(f.Accounts, acctDef)
				}
				acctDef = AccountDef{}
			} else if hasRec {
				f.Records = append(f.Records, rec)
			}
			rec = Record{}
			hasRec = false
			continue
		}

		if inAccounts {
			switch code {
			case 'N':
				acctDef.Name = value
			case 'T':
				acctDef.Type = value
			case 'D':
				acctDef.Description = value
			}
			continue
		}

		switch code {
		case 'D':
			d, err := parseDate(value, dateFormat)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			rec.Date = d
			hasRec = true
		case 'T', 'U':
			amt, err := parseAmount(value, decimalSep)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			rec.Amount = amt
			hasRec = true
		case 'P':
			rec.Payee = value
			hasRec = true
		case 'M':
			rec.Memo = value
			hasRec = true
		case 'L':
			rec.Category = value
			hasRec = true
		case 'N':
			rec.Number = value
			hasRec = true
		default:
			// Cleared flags, addresses and split details are not
			// needed for migration.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading QIF: %w", err)
	}
	if hasRec {
		f.Records = append(f.Records, rec)
	}
	return f, nil
}

// parseDate reads QIF dates like "31/12/99", "31/12'2004" or
// "3/ 1/99", splitting on the separator the format family uses.
func parseDate(s string, format ledger.DateFormat) (model.DateInt, error) {
	norm := strings.NewReplacer("'", "/", " ", "").Replace(s)
	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid QIF date %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid QIF date %q: %w", s, err)
		}
		nums[i] = n
	}

	var day, month, year int
	switch format {
	case ledger.DateFormatMMDDYY:
		month, day, year = nums[0], nums[1], nums[2]
	default:
		day, month, year = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		if year >= 70 {
			year += 1900
		} else {
			year += 2000
		}
	}
	return model.NewDateInt(year, month, day), nil
}

func parseAmount(s string, decimalSep rune) (decimal.Decimal, error) {
	var norm string
	if decimalSep == ',' {
		norm = strings.NewReplacer(".", "", ",", ".").Replace(s)
	} else {
		norm = strings.ReplaceAll(s, ",", "")
	}
	amt, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid QIF amount %q: %w", s, err)
	}
	return amt, nil
}
