package main

import (
	"os"

	"github.com/fairplay-nil/backend/cmd/fairplay/commands"
)

// main is the entry point for the FairPlay CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
