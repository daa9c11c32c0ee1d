// Package main is the entry point for the shenv CLI.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/unrss/shenv/internal/cmd"
)

//go:embed version.txt
var version string

func main() {
	if err := cmd.Execute(cmd.Assets{
		Version: version,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "shenv:", err)
		os.Exit(1)
	}
}
