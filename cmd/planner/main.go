package main

import (
	"os"

	"github.com/healthtrack/backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
