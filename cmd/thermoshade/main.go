package main

import (
	"os"

	"github.com/thatsimonsguy/thermoshade/cmd/thermoshade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
