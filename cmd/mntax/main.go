package main

import (
	"os"

	"github.com/mntax-dev/mntax/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
