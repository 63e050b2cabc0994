package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/renamer/cmd/renamer"
)

func main() {
	rootCmd := renamer.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "renamer: %v\n", err)
		os.Exit(1)
	}
}
