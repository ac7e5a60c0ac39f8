package cmd

import (
	"fmt"

	"github.com/frostyard/autoenv/internal/conda"
	"github.com/frostyard/autoenv/internal/config"
	"github.com/frostyard/autoenv/internal/runner"
	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove the conda environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.SystemRunner{}
		root := rootDir
		if root == "" {
			root = config.DefaultRoot()
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		c, err := conda.Detect(r, cfg.CondaPath)
		if err != nil {
			return err
		}

		exists, err := c.EnvExists(r, cfg.EnvName)
		if err != nil {
			return err
		}
		if !exists {
			fmt.Printf("Environment %q does not exist; nothing to do.\n", cfg.EnvName)
			return nil
		}

		if !confirm(fmt.Sprintf("Remove environment %q and everything in it?", cfg.EnvName)) {
			fmt.Println("Aborted.")
			return nil
		}

		fmt.Printf("Removing environment %q...\n", cfg.EnvName)
		if err := c.Remove(r, cfg.EnvName); err != nil {
			return err
		}

		fmt.Println("Destroyed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}
