// Package main provides the entry point for the resume ATS API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume-ats",
	Short:         "Resume ATS scoring service",
	Long:          "Scores resumes for ATS compatibility, keyword coverage, readability and layout, over HTTP or from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
