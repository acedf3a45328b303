package main

import (
	"os"

	"github.com/complex-gh/ratadie_go/cmd/rdconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
