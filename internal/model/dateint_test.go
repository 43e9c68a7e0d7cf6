package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIntPacking(t *testing.T) {
	d := NewDateInt(2004, 7, 19)
	assert.Equal(t, DateInt(20040719), d)
	assert.Equal(t, "20040719", d.String())

	at := d.Time()
	assert.Equal(t, time.Date(2004, time.July, 19, 0, 0, 0, 0, time.UTC), at)
}

func TestDateIntMillis(t *testing.T) {
	// UTC midnight, independent of the local zone.
	d := NewDateInt(1970, 1, 2)
	assert.Equal(t, int64(24*60*60*1000), d.Millis())
}

func TestDateIntFromTime(t *testing.T) {
	at := time.Date(1999, time.December, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, DateInt(19991231), DateIntFromTime(at))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2004-07-19")
	require.NoError(t, err)
	assert.Equal(t, DateInt(20040719), d)

	_, err = ParseDate("19/07/2004")
	assert.Error(t, err)
}
