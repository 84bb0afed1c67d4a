/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Capability-aware job scheduler",
	Long: `Capability-aware job scheduler.

Places jobs on machines whose capability sets cover the job's
requirements, ranking candidates by criteria such as least
unfinished or most finished jobs.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
