// Package sidebar exports and imports the flat list of account names
// the host shows in its sidebar, one name per line.
package sidebar

import (
	"bufio"
	"fmt"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
)

// DefaultFile is the conventional sidebar list file name.
const DefaultFile = "sidebar accounts.txt"

// Export writes the book's account names to path, one per line.
func Export(book ledger.Book, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sidebar file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, a := range book.Accounts() {
		fmt.Fprintln(w, a.Name())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing sidebar file: %w", err)
	}
	return nil
}

// Import removes accounts whose names are absent from the list at
// path. With dryRun set it only reports what would be removed.
func Import(book ledger.Book, path string, dryRun bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening sidebar file: %w", err)
	}
	defer f.Close()

	expected := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if name := sc.Text(); name != "" {
			expected[name] = true
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading sidebar file: %w", err)
	}

	var remove []ledger.Account
	for _, a := range book.Accounts() {
		if !expected[a.Name()] {
			remove = append(remove, a)
		}
	}
	if len(remove) == 0 {
		log.Info("nothing to remove")
		return nil
	}

	for _, a := range remove {
		if dryRun {
			log.Infof("simulating removing %s", a.Name())
			continue
		}
		log.Infof("removing %s", a.Name())
		if err := a.Delete(); err != nil {
			return fmt.Errorf("removing %s: %w", a.Name(), err)
		}
	}
	return nil
}
