package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdmigrate/mdmigrate/internal/config"
	"github.com/mdmigrate/mdmigrate/internal/ledger"
	"github.com/mdmigrate/mdmigrate/internal/ledger/memory"
	"github.com/mdmigrate/mdmigrate/internal/meta"
	"github.com/mdmigrate/mdmigrate/internal/provision"
	"github.com/mdmigrate/mdmigrate/internal/sidebar"
)

func newSidebarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Maintain the sidebar account list file",
	}
	cmd.AddCommand(newSidebarExportCommand())
	cmd.AddCommand(newSidebarImportCommand())
	return cmd
}

func newSidebarExportCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "export [directory]",
		Short: "Write the provisioned account names to the sidebar file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			book, err := provisionedBook(dir, cfgFile)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, sidebar.DefaultFile)
			if err := sidebar.Export(book, path); err != nil {
				return err
			}
			fmt.Printf("wrote %d accounts to %s\n", len(book.Accounts()), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", config.DefaultFile, "config file name within the directory")

	return cmd
}

func newSidebarImportCommand() *cobra.Command {
	var cfgFile string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [directory]",
		Short: "Compare the provisioned accounts against the sidebar file",
		Long: "Provisions the accounts named by the directory's metadata and " +
			"export files, then removes every account absent from the sidebar " +
			"file, reporting what remains.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			book, err := provisionedBook(dir, cfgFile)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, sidebar.DefaultFile)
			if err := sidebar.Import(book, path, dryRun); err != nil {
				return err
			}
			for _, a := range book.Accounts() {
				fmt.Printf("%s [%s]\n", a.Name(), a.Type())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", config.DefaultFile, "config file name within the directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report removals")

	return cmd
}

func resolveDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absDir, nil
}

// provisionedBook builds a fresh book holding the accounts a run over
// dir would create, without importing any transactions.
func provisionedBook(dir, cfgFile string) (ledger.Book, error) {
	cfg, err := loadConfig(dir, cfgFile)
	if err != nil {
		return nil, err
	}

	book := memory.NewBook(cfg.BaseCurrency)
	md, err := meta.Load(dir, cfg.MetadataFile)
	if err != nil {
		return nil, err
	}
	if err := provision.CreateCurrencies(book, md.Currencies); err != nil {
		return nil, err
	}
	manifest, err := meta.LoadAccounts(md, dir, cfg.Extension)
	if err != nil {
		return nil, err
	}
	if _, err := provision.CreateAccounts(book, manifest.All()); err != nil {
		return nil, err
	}
	return book, nil
}
