package main

import (
	"os"

	"github.com/zlarouche/deck-of-cards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
