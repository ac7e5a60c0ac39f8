package prereq

import (
	"runtime"
	"strings"

	"github.com/frostyard/autoenv/internal/runner"
)

// Tool is an optional host binary required by a downstream automation feature.
type Tool struct {
	Binary  string
	Package string
	Purpose string
}

// tools is the fixed probe list. Absence is advisory: it degrades the named
// feature, never the environment setup itself.
var tools = []Tool{
	{"xclip", "xclip", "clipboard"},
	{"xsel", "xsel", "clipboard"},
	{"gnome-screenshot", "gnome-screenshot", "screen capture"},
	{"scrot", "scrot", "screen capture"},
	{"import", "imagemagick", "screen capture"},
}

// Status is the probe result for a single tool.
type Status struct {
	Tool    Tool
	Path    string
	Present bool
}

// Report holds one probe pass over the host.
type Report struct {
	Statuses []Status
}

// Probe checks each optional tool for existence on $PATH. It never invokes
// the tools. Returns nil on operating systems outside the targeted family.
func Probe(r runner.Runner) *Report {
	return probe(r, runtime.GOOS)
}

func probe(r runner.Runner, goos string) *Report {
	if goos != "linux" {
		return nil
	}
	rep := &Report{}
	for _, t := range tools {
		path, err := r.LookPath(t.Binary)
		rep.Statuses = append(rep.Statuses, Status{Tool: t, Path: path, Present: err == nil})
	}
	return rep
}

// MissingPackages returns the deduplicated installer package names for
// absent tools, in probe order.
func (rep *Report) MissingPackages() []string {
	if rep == nil {
		return nil
	}
	seen := make(map[string]bool)
	var missing []string
	for _, s := range rep.Statuses {
		if s.Present || seen[s.Tool.Package] {
			continue
		}
		seen[s.Tool.Package] = true
		missing = append(missing, s.Tool.Package)
	}
	return missing
}

// InstallArgs returns the apt-get arguments to install the given packages.
// The caller is responsible for running them under sudo.
func InstallArgs(pkgs []string) []string {
	return append([]string{"apt-get", "install", "-y"}, pkgs...)
}

// ManualCommand returns the command line an operator can paste to install
// the given packages themselves.
func ManualCommand(pkgs []string) string {
	return "sudo apt-get install -y " + strings.Join(pkgs, " ")
}
