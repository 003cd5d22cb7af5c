package main

import (
	"os"

	"github.com/jaehoonkim/go-hwpx/cmd/hwpx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
