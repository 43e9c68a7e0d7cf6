// Package qif repairs and imports QIF transaction export files.
package qif

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/labstack/gommon/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CorrectEncoding re-decodes a Latin-1 export file as UTF-8, writing a
// sibling "<name> (edit)<ext>" file. The original is left in place for
// reference; the new path is returned.
func CorrectEncoding(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening export file: %w", err)
	}
	defer in.Close()

	ext := filepath.Ext(path)
	outPath := strings.TrimSuffix(path, ext) + " (edit)" + ext
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating repaired file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, transform.NewReader(in, charmap.ISO8859_1.NewDecoder())); err != nil {
		return "", fmt.Errorf("re-encoding %s: %w", path, err)
	}
	return outPath, nil
}

// CorrectOpeningBalance removes the opening-balance category line from
// a QIF file. Exports carry an "Opening Balance" transaction whose
// category is a transfer to the account itself, which the importer
// would turn into a duplicate account. The line is "L[<name>]" with
// the literal account name; when no such line exists the file is left
// unchanged, which makes the repair idempotent.
func CorrectOpeningBalance(path, accountName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	pat := regexp.MustCompile(`(?m)^L` + regexp.QuoteMeta("["+accountName+"]") + `\n`)
	patched := pat.ReplaceAll(data, nil)
	if bytes.Equal(patched, data) {
		log.Infof("no opening balance detected for %s", accountName)
	}

	if err := os.WriteFile(path, patched, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
