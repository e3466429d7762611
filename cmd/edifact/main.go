package main

import (
	"os"

	"github.com/coop-care/paid-edifact/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
