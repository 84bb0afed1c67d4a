/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/docker/go-units"
	"github.com/vasilii314/scheduler/scheduler"
)

func printMachines(s *scheduler.Scheduler) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 5, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, "ID\tCAPABILITIES\tUNFINISHED\tFINISHED\t")
	for _, m := range s.GetMachines() {
		caps := m.Capabilities.ToSlice()
		sort.Strings(caps)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t\n", m.ID, strings.Join(caps, ","), m.UnfinishedCount, m.FinishedCount)
	}
	w.Flush()
}

func printJobs(s *scheduler.Scheduler) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 5, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, "JOB\tMACHINE\tSTATUS\t")
	for _, j := range s.GetJobs() {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", j.ID, j.MachineID, j.Status)
	}
	w.Flush()
}

func printEvents(s *scheduler.Scheduler) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 5, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, "EVENT\tJOB\tMACHINE\tSTATUS\tWHEN\t")
	for _, e := range s.GetEvents() {
		age := fmt.Sprintf("%s ago", units.HumanDuration(time.Now().UTC().Sub(e.Timestamp)))
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", e.ID, e.JobID, e.MachineID, e.Status, age)
	}
	w.Flush()
}
