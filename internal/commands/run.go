package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/mdmigrate/mdmigrate/internal/config"
	"github.com/mdmigrate/mdmigrate/internal/ledger/memory"
	"github.com/mdmigrate/mdmigrate/internal/migrate"
	"github.com/mdmigrate/mdmigrate/internal/qif"
)

func newRunCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Run the migration over a directory of export files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			return runMigration(dir, cfgFile)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", config.DefaultFile, "config file name within the directory")

	return cmd
}

// loadConfig reads the directory's config file when present, falling
// back to the defaults, and applies the configured log level.
func loadConfig(dir, cfgFile string) (*config.Config, error) {
	cfg := config.Default()
	cfgPath := filepath.Join(dir, cfgFile)
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}
	log.SetLevel(cfg.Level())
	return cfg, nil
}

func runMigration(dir, cfgFile string) error {
	cfg, err := loadConfig(dir, cfgFile)
	if err != nil {
		return err
	}

	book := memory.NewBook(cfg.BaseCurrency)
	runner := migrate.NewRunner(dir, cfg, qif.NewImporter())
	if err := runner.Run(book); err != nil {
		return err
	}

	// Print what the run produced so the result can be eyeballed.
	for _, a := range book.Accounts() {
		txns := book.Transactions().ForAccount(a)
		fmt.Printf("%s [%s]: %d transactions\n", a.Name(), a.Type(), len(txns))
	}
	return nil
}
