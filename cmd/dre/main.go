package main

import (
	"os"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
