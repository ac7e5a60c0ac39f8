package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootDir string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "autoenv",
	Short: "Bootstrap the automation workbench environment and host tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "root directory for autoenv data (default ~/.local/share/autoenv)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every external command")
}
