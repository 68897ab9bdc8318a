// Package main is the entry point for the ABC letter display.
package main

import (
	"os"

	"github.com/f3rmion/abc/cmd/abc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
