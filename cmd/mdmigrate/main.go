package main

import (
	"os"

	"github.com/mdmigrate/mdmigrate/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
