package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/keepsake/cmd/keepsake"
)

func main() {
	rootCmd := keepsake.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, keepsake.FormatError(os.Stderr, err))
		os.Exit(1)
	}
}
