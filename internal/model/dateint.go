package model

import (
	"fmt"
	"time"
)

// DateInt is a calendar date packed as YYYYMMDD, the ledger's native
// transaction date representation.
type DateInt int

// NewDateInt packs year, month and day into a DateInt.
func NewDateInt(year, month, day int) DateInt {
	return DateInt(year*10000 + month*100 + day)
}

// DateIntFromTime converts a time to its DateInt in UTC.
func DateIntFromTime(t time.Time) DateInt {
	y, m, d := t.UTC().Date()
	return NewDateInt(y, int(m), d)
}

// Time returns the date as UTC midnight.
func (d DateInt) Time() time.Time {
	year := int(d) / 10000
	month := (int(d) % 10000) / 100
	day := int(d) % 100
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Millis returns the date as milliseconds since the Unix epoch at UTC
// midnight, the form the ledger's creation-date fields take.
func (d DateInt) Millis() int64 {
	return d.Time().UnixMilli()
}

func (d DateInt) String() string {
	return fmt.Sprintf("%08d", int(d))
}

// ParseDate parses an ISO "YYYY-MM-DD" date string, as used by the
// "create date" metadata field.
func ParseDate(s string) (DateInt, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateIntFromTime(t), nil
}
