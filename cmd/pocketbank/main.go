package main

import (
	"os"

	"github.com/pocketbank-dev/pocketbank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
