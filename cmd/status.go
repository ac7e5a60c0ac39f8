package cmd

import (
	"fmt"

	"github.com/frostyard/autoenv/internal/conda"
	"github.com/frostyard/autoenv/internal/config"
	"github.com/frostyard/autoenv/internal/runner"
	pkgversion "github.com/frostyard/autoenv/internal/version"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show conda, environment and tool status",
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

		fmt.Printf("autoenv:     %s\n", pkgversion.Short())
		fmt.Printf("Root:        %s\n", root)
		fmt.Printf("Environment: %s\n", cfg.EnvName)

		c, err := conda.Detect(r, cfg.CondaPath)
		if err != nil {
			fmt.Println("Conda:       not found")
			fmt.Println("Run 'autoenv setup' after installing miniconda.")
			return nil
		}
		fmt.Printf("Conda:       %s\n", c.Path)

		if v, err := c.Version(r); err == nil {
			fmt.Printf("Version:     %s\n", v)
		}

		exists, err := c.EnvExists(r, cfg.EnvName)
		if err != nil {
			return err
		}
		if !exists {
			fmt.Println("Status:      environment missing")
			fmt.Println("Run 'autoenv setup' to create it.")
			return nil
		}

		fmt.Println("Status:      environment present")
		if v, err := c.EnvPythonVersion(r, cfg.EnvName); err == nil {
			fmt.Printf("Python:      %s\n", v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
