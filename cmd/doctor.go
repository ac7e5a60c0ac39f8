package cmd

import (
	"fmt"
	"os"

	"github.com/frostyard/autoenv/internal/prereq"
	"github.com/frostyard/autoenv/internal/runner"
	"github.com/spf13/cobra"
)

var doctorInstall bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for optional clipboard and screenshot tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.SystemRunner{}

		rep := prereq.Probe(r)
		if rep == nil {
			fmt.Println("Nothing to check on this platform.")
			return nil
		}

		printProbeReport(rep)

		missing := rep.MissingPackages()
		if len(missing) == 0 {
			fmt.Println(successStyle.Render("All optional tools present."))
			return nil
		}

		manual := prereq.ManualCommand(missing)
		if !doctorInstall {
			fmt.Printf("Install the missing tools with %s\n", cmdStyle.Render(manual))
			return nil
		}

		if !confirm(fmt.Sprintf("Install %d missing package(s) with sudo apt-get?", len(missing))) {
			fmt.Printf("Install them yourself with %s\n", cmdStyle.Render(manual))
			return nil
		}

		// Attached so sudo can prompt for a password.
		if err := r.RunAttached("sudo", prereq.InstallArgs(missing)...); err != nil {
			fmt.Fprintf(os.Stderr, "warning: install failed: %v\n", err)
			fmt.Printf("Install them yourself with %s\n", cmdStyle.Render(manual))
			return nil
		}

		fmt.Println(successStyle.Render("Missing tools installed."))
		return nil
	},
}

func printProbeReport(rep *prereq.Report) {
	fmt.Println("Host tools:")
	for _, s := range rep.Statuses {
		if s.Present {
			fmt.Printf("  %s %-18s %s\n",
				successStyle.Render("ok"), s.Tool.Binary,
				mutedStyle.Render(s.Path))
		} else {
			fmt.Printf("  %s %-18s %s\n",
				errorStyle.Render("--"), s.Tool.Binary,
				mutedStyle.Render(s.Tool.Purpose+", package "+s.Tool.Package))
		}
	}
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorInstall, "install", false, "offer to install missing packages via apt-get")
	rootCmd.AddCommand(doctorCmd)
}
