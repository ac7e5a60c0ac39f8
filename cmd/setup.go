package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/frostyard/autoenv/internal/conda"
	"github.com/frostyard/autoenv/internal/config"
	"github.com/frostyard/autoenv/internal/envfile"
	"github.com/frostyard/autoenv/internal/notify"
	"github.com/frostyard/autoenv/internal/prereq"
	"github.com/frostyard/autoenv/internal/runner"
	"github.com/spf13/cobra"
)

const (
	envFileName          = "environment.yml"
	requirementsFileName = "requirements.txt"
)

type creationMode int

const (
	modeNone creationMode = iota
	modeEnvFile
	modeRequirements
)

// creationPlan decides how the environment will be created from what is
// present in dir: the declarative file wins over the flat requirements list.
func creationPlan(dir string) (creationMode, string) {
	if p := filepath.Join(dir, envFileName); fileExists(p) {
		return modeEnvFile, p
	}
	if p := filepath.Join(dir, requirementsFileName); fileExists(p) {
		return modeRequirements, p
	}
	return modeNone, ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var assumeYes bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the conda environment and check host tools",
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

		wd, _ := os.Getwd()
		return runSetup(r, c, cfg, root, wd, assumeYes, confirm)
	},
}

// runSetup is the bootstrap sequence: confirm-gated recreate, creation from
// whatever the working directory provides, advisory probe, verification.
// Declining the recreate prompt is a graceful abort, not an error.
func runSetup(r runner.Runner, c *conda.Conda, cfg *config.Config, root, wd string, yes bool, confirmFn func(string) bool) error {
	fmt.Printf("Using conda at %s\n", c.Path)

	exists, err := c.EnvExists(r, cfg.EnvName)
	if err != nil {
		return err
	}
	if exists {
		if !yes && !confirmFn(fmt.Sprintf("Environment %q exists. Remove and recreate?", cfg.EnvName)) {
			fmt.Printf("Keeping existing environment %q.\n", cfg.EnvName)
			return nil
		}
		fmt.Printf("Removing environment %q...\n", cfg.EnvName)
		if err := c.Remove(r, cfg.EnvName); err != nil {
			return err
		}
	}

	mode, path := creationPlan(wd)
	switch mode {
	case modeEnvFile:
		if ef, err := envfile.Read(path); err == nil {
			if ef.Name != "" && ef.Name != cfg.EnvName {
				fmt.Fprintf(os.Stderr, "warning: %s names environment %q, config expects %q\n", envFileName, ef.Name, cfg.EnvName)
			}
			if pin := ef.PythonVersion(); pin != "" && pin != cfg.PythonVersion {
				fmt.Fprintf(os.Stderr, "warning: %s pins python %s, config expects %s\n", envFileName, pin, cfg.PythonVersion)
			}
		}
		fmt.Printf("Creating environment from %s...\n", envFileName)
		if err := c.CreateFromFile(r, path); err != nil {
			return err
		}
	case modeRequirements:
		fmt.Printf("Creating environment %q with python %s...\n", cfg.EnvName, cfg.PythonVersion)
		if err := c.CreateBare(r, cfg.EnvName, cfg.PythonVersion); err != nil {
			return err
		}
		fmt.Printf("Installing packages from %s...\n", requirementsFileName)
		if err := c.InstallRequirements(r, cfg.EnvName, path); err != nil {
			return err
		}
	case modeNone:
		return fmt.Errorf("not found: neither %s nor %s in %s", envFileName, requirementsFileName, wd)
	}

	// Advisory only: missing tools degrade clipboard/screenshot features,
	// not the environment itself.
	if rep := prereq.Probe(r); rep != nil {
		printProbeReport(rep)
		if missing := rep.MissingPackages(); len(missing) > 0 {
			fmt.Println(warningStyle.Render("Some optional tools are missing."))
			fmt.Printf("Install them with %s or run %s\n",
				cmdStyle.Render(prereq.ManualCommand(missing)),
				cmdStyle.Render("autoenv doctor --install"))
		}
	}

	fmt.Println("Verifying...")
	if v, err := c.Version(r); err == nil {
		fmt.Printf("  %s\n", v)
	} else {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if v, err := c.EnvPythonVersion(r, cfg.EnvName); err == nil {
		fmt.Printf("  %s (env %s)\n", v, cfg.EnvName)
	} else {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if err := cfg.Save(root); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save config: %v\n", err)
	}

	if cfg.Notify {
		if err := notify.Send("autoenv", fmt.Sprintf("Environment %q is ready.", cfg.EnvName)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: notification failed: %v\n", err)
		}
	}

	fmt.Printf("Environment %q is ready. Activate it with %s\n",
		cfg.EnvName, cmdStyle.Render("conda activate "+cfg.EnvName))
	return nil
}

func init() {
	setupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "recreate an existing environment without prompting")
	rootCmd.AddCommand(setupCmd)
}
