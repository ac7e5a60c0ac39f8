package samples

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// The corpus format is a label line per example followed by its code:
//
//	### Example 1.
//	<code lines>
//	### Example 2.
//	<code lines>
//
// Example content is opaque; only the label structure is checked.

var (
	headerRe   = regexp.MustCompile(`^### Example (\d+)\.\s*$`)
	filenameRe = regexp.MustCompile(`^cwe_(\d+)_sample\.`)
)

// Example is one labeled code example within a sample file.
type Example struct {
	Number    int
	CodeLines int
}

// File is one CWE sample file in the corpus.
type File struct {
	Path     string
	CWE      int
	Examples []Example
}

// Scan reads every sample file in dir, sorted by filename. Files that do not
// match the cwe_<id>_sample.* naming convention are ignored.
func Scan(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read samples dir: %w", err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := filenameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		cwe, _ := strconv.Atoi(m[1])
		path := filepath.Join(dir, e.Name())
		examples, err := parse(path)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path, CWE: cwe, Examples: examples})
	}
	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i].Path) < filepath.Base(files[j].Path)
	})
	return files, nil
}

func parse(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var examples []Example
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if m := headerRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			examples = append(examples, Example{Number: n})
			continue
		}
		if len(examples) > 0 && strings.TrimSpace(line) != "" {
			examples[len(examples)-1].CodeLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return examples, nil
}

// Verify checks the label structure of a sample file: at least one example,
// code under every label, numbering sequential from 1.
func (f *File) Verify() []error {
	var errs []error
	if len(f.Examples) == 0 {
		return []error{fmt.Errorf("%s: no examples", filepath.Base(f.Path))}
	}
	for i, ex := range f.Examples {
		if ex.Number != i+1 {
			errs = append(errs, fmt.Errorf("%s: example %d is labeled %d", filepath.Base(f.Path), i+1, ex.Number))
		}
		if ex.CodeLines == 0 {
			errs = append(errs, fmt.Errorf("%s: example %d has no code", filepath.Base(f.Path), ex.Number))
		}
	}
	return errs
}

// VerifyAll verifies every file and flattens the findings.
func VerifyAll(files []File) []error {
	var errs []error
	for i := range files {
		errs = append(errs, files[i].Verify()...)
	}
	return errs
}
