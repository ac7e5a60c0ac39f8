package samples

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSample(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

const goodSample = `### Example 1.
import os

def create_temp_file(data):
    return data
### Example 2.
def write_temp_data(content):
    return content
`

func TestScanParsesCorpus(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "cwe_377_sample.py", goodSample)
	writeSample(t, dir, "cwe_78_sample.py", "### Example 1.\nx = 1\n")
	writeSample(t, dir, "README.md", "not a sample")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 sample files, got %d", len(files))
	}
	// Sorted by filename: cwe_377 before cwe_78.
	if files[0].CWE != 377 {
		t.Errorf("files[0].CWE = %d, want 377", files[0].CWE)
	}
	if len(files[0].Examples) != 2 {
		t.Errorf("expected 2 examples, got %d", len(files[0].Examples))
	}
	if files[0].Examples[0].CodeLines != 3 {
		t.Errorf("example 1 CodeLines = %d, want 3", files[0].Examples[0].CodeLines)
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestVerifyGood(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "cwe_377_sample.py", goodSample)
	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if errs := VerifyAll(files); len(errs) != 0 {
		t.Errorf("expected clean verify, got %v", errs)
	}
}

func TestVerifyEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "cwe_22_sample.py", "just a comment\n")
	files, _ := Scan(dir)
	errs := VerifyAll(files)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "no examples") {
		t.Errorf("expected a no-examples finding, got %v", errs)
	}
}

func TestVerifyExampleWithoutCode(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "cwe_79_sample.py", "### Example 1.\n### Example 2.\ny = 2\n")
	files, _ := Scan(dir)
	errs := VerifyAll(files)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "no code") {
		t.Errorf("expected a no-code finding, got %v", errs)
	}
}

func TestVerifyNumberingGap(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "cwe_89_sample.py", "### Example 1.\nx = 1\n### Example 3.\ny = 2\n")
	files, _ := Scan(dir)
	errs := VerifyAll(files)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "labeled 3") {
		t.Errorf("expected a numbering finding, got %v", errs)
	}
}
