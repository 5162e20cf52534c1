package main

import (
	"fmt"
	"os"

	"go-calculators/internal/catalog"
	"go-calculators/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version, catalog.Default()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
