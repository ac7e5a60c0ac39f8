package prereq

import (
	"fmt"
	"strings"
	"testing"
)

type mockRunner struct {
	available map[string]bool
	looked    []string
}

func (m *mockRunner) Run(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (m *mockRunner) RunAttached(name string, args ...string) error {
	return nil
}

func (m *mockRunner) LookPath(name string) (string, error) {
	m.looked = append(m.looked, name)
	if m.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("not found: %s", name)
}

func allTools() map[string]bool {
	return map[string]bool{
		"xclip": true, "xsel": true,
		"gnome-screenshot": true, "scrot": true, "import": true,
	}
}

func TestProbeAllPresent(t *testing.T) {
	r := &mockRunner{available: allTools()}
	rep := probe(r, "linux")
	if rep == nil {
		t.Fatal("expected report on linux")
	}
	if missing := rep.MissingPackages(); len(missing) != 0 {
		t.Errorf("expected no missing packages, got %v", missing)
	}
	for _, s := range rep.Statuses {
		if !s.Present {
			t.Errorf("%s should be present", s.Tool.Binary)
		}
	}
}

func TestProbeOneMissing(t *testing.T) {
	avail := allTools()
	delete(avail, "scrot")
	r := &mockRunner{available: avail}
	rep := probe(r, "linux")
	missing := rep.MissingPackages()
	if len(missing) != 1 || missing[0] != "scrot" {
		t.Errorf("missing = %v, want [scrot]", missing)
	}
}

func TestProbeOtherGOOSIsNoop(t *testing.T) {
	r := &mockRunner{available: allTools()}
	rep := probe(r, "darwin")
	if rep != nil {
		t.Errorf("expected nil report on darwin, got %+v", rep)
	}
	if len(r.looked) != 0 {
		t.Errorf("probe on darwin should not touch the runner, looked up %v", r.looked)
	}
	if missing := rep.MissingPackages(); missing != nil {
		t.Errorf("nil report should have no missing packages, got %v", missing)
	}
}

func TestMissingPackagesDedup(t *testing.T) {
	rep := &Report{Statuses: []Status{
		{Tool: Tool{Binary: "a", Package: "pkg"}, Present: false},
		{Tool: Tool{Binary: "b", Package: "pkg"}, Present: false},
	}}
	missing := rep.MissingPackages()
	if len(missing) != 1 {
		t.Errorf("expected deduplicated package list, got %v", missing)
	}
}

func TestManualCommand(t *testing.T) {
	got := ManualCommand([]string{"xclip", "scrot"})
	want := "sudo apt-get install -y xclip scrot"
	if got != want {
		t.Errorf("ManualCommand = %q, want %q", got, want)
	}
}

func TestInstallArgs(t *testing.T) {
	got := strings.Join(InstallArgs([]string{"xsel"}), " ")
	want := "apt-get install -y xsel"
	if got != want {
		t.Errorf("InstallArgs = %q, want %q", got, want)
	}
}
