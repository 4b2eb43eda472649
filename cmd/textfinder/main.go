package main

import (
	"fmt"
	"os"

	"github.com/harrison/textfinder/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
