package main

import (
	"os"

	"github.com/agenthands/nmonkey/cmd/nmonkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
