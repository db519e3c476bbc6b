package main

import (
	"os"

	"github.com/okian/fisa/cmd/smoke/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
