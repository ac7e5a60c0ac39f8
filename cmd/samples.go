package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/frostyard/autoenv/internal/config"
	"github.com/frostyard/autoenv/internal/samples"
	"github.com/spf13/cobra"
)

var samplesDir string

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Inspect the CWE example corpus",
}

func resolveSamplesDir() (string, error) {
	if samplesDir != "" {
		return samplesDir, nil
	}
	root := rootDir
	if root == "" {
		root = config.DefaultRoot()
	}
	cfg, err := config.Load(root)
	if err != nil {
		return "", err
	}
	return cfg.SamplesDir, nil
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sample files and their example counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveSamplesDir()
		if err != nil {
			return err
		}

		files, err := samples.Scan(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No sample files in %s.\n", dir)
			return nil
		}

		fmt.Printf("%-28s %8s %10s\n", "FILE", "CWE", "EXAMPLES")
		for _, f := range files {
			fmt.Printf("%-28s %8d %10d\n", filepath.Base(f.Path), f.CWE, len(f.Examples))
		}
		return nil
	},
}

var samplesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every sample file against the corpus format",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveSamplesDir()
		if err != nil {
			return err
		}

		files, err := samples.Scan(dir)
		if err != nil {
			return err
		}

		errs := samples.VerifyAll(files)
		for _, e := range errs {
			fmt.Println(errorStyle.Render("  " + e.Error()))
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d problem(s) in %d sample file(s)", len(errs), len(files))
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("%d sample file(s) OK.", len(files))))
		return nil
	},
}

func init() {
	samplesCmd.PersistentFlags().StringVar(&samplesDir, "dir", "", "samples directory (default from config)")
	samplesCmd.AddCommand(samplesListCmd)
	samplesCmd.AddCommand(samplesVerifyCmd)
	rootCmd.AddCommand(samplesCmd)
}
