// Package meta loads the migration metadata file and discovers
// undeclared accounts from the export files sitting next to it.
package meta

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdmigrate/mdmigrate/internal/model"
)

// ConfigError reports metadata that is missing, unreadable or
// malformed. The run must not reach its destructive phase when the
// metadata itself fails to load.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("loading metadata %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrNothingToMigrate reports that no accounts were declared and none
// could be inferred from export files. A fully declared directory with
// nothing new to infer is NOT this condition; the sentinel only fires
// when the combined account set is empty after filtering.
var ErrNothingToMigrate = errors.New("no accounts declared or inferred")

// Load reads and parses the metadata file in dir.
func Load(dir, file string) (*model.Metadata, error) {
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var md model.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &md, nil
}

// Manifest is the resolved set of accounts for a run. Declared and
// Inferred are kept distinct so callers can tell "fully declared,
// nothing to add" apart from "directory misconfigured".
type Manifest struct {
	Declared []model.AccountSpec
	Inferred []model.AccountSpec
}

// All returns the declared accounts followed by the inferred ones.
func (m *Manifest) All() []model.AccountSpec {
	out := make([]model.AccountSpec, 0, len(m.Declared)+len(m.Inferred))
	out = append(out, m.Declared...)
	return append(out, m.Inferred...)
}

// LoadAccounts resolves the accounts for a run: the declared specs
// plus an inferred spec for every export file in dir whose base name
// matches no declared account and is not a cash sibling. Inferred
// accounts carry no type and so default to bank. The "limit accounts"
// filter applies after inference. When the combined set comes out
// empty, the manifest is returned together with ErrNothingToMigrate.
func LoadAccounts(md *model.Metadata, dir, ext string) (*Manifest, error) {
	m := &Manifest{Declared: md.Accounts}

	declared := make(map[string]bool, len(md.Accounts))
	for _, spec := range md.Accounts {
		declared[model.SafeName(spec.Name)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigError{Path: dir, Err: err}
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			continue
		}
		base := e.Name()[:len(e.Name())-len(ext)]
		if strings.HasSuffix(base, model.CashSuffix) {
			continue
		}
		if declared[base] {
			continue
		}
		m.Inferred = append(m.Inferred, model.AccountSpec{Name: base})
	}

	if len(md.LimitAccounts) > 0 {
		keep := make(map[string]bool, len(md.LimitAccounts))
		for _, name := range md.LimitAccounts {
			keep[name] = true
		}
		m.Declared = filterSpecs(m.Declared, keep)
		m.Inferred = filterSpecs(m.Inferred, keep)
	}

	if len(m.Declared)+len(m.Inferred) == 0 {
		return m, ErrNothingToMigrate
	}
	return m, nil
}

func filterSpecs(specs []model.AccountSpec, keep map[string]bool) []model.AccountSpec {
	var out []model.AccountSpec
	for _, spec := range specs {
		if keep[spec.Name] {
			out = append(out, spec)
		}
	}
	return out
}
