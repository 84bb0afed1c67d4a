/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vasilii314/scheduler/harness"
	"github.com/vasilii314/scheduler/scheduler"
)

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !errors.Is(err, fs.ErrNotExist)
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling scenario",
	Long: `Scheduler run command.

The run command executes a scenario script against a fresh scheduler
instance and prints the outcome of every operation followed by a
machine summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		filename, _ := cmd.Flags().GetString("filename")
		showEvents, _ := cmd.Flags().GetBool("events")
		fullFilePath, err := filepath.Abs(filename)
		if err != nil {
			log.Fatal(err)
		}
		if !fileExists(filename) {
			log.Fatalf("File %s does not exist\n", filename)
		}
		log.Printf("Using scenario file: %v\n", fullFilePath)
		f, err := os.Open(filename)
		if err != nil {
			log.Fatalf("Cannot read file: %v\n", filename)
		}
		defer f.Close()
		s := scheduler.New()
		runner := harness.New(s)
		if err := runner.Load(f); err != nil {
			log.Fatalf("Cannot parse scenario: %v\n", err)
		}
		results := runner.Run()
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("%d: %s %s -> error: %v\n", res.Op.Line, res.Op.Kind, res.Op.ID, res.Err)
				continue
			}
			fmt.Printf("%d: %s %s -> %s\n", res.Op.Line, res.Op.Kind, res.Op.ID, res.Output)
		}
		fmt.Println()
		printMachines(s)
		fmt.Println()
		printJobs(s)
		if showEvents {
			fmt.Println()
			printEvents(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("filename", "f", "scenario.txt", "Scenario script file")
	runCmd.Flags().BoolP("events", "e", false, "Print the job event log after the run")
}
