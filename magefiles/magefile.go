//go:build mage

// Package main contains Mage build targets for syllabus developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "syllabus"
	cmdPkg     = "./cmd/syllabus"
	exampleDir = "output"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Example renders the built-in example course into output/.
func Example() error {
	mg.Deps(Build)
	if err := os.MkdirAll(exampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", exampleDir, err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "build", "--output-dir", exampleDir, "--no-catalog")
}

// Stats prints Go production/test line counts and the documentation word count.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkSources(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			testLines += countLines(data)
		case filepath.Ext(path) == ".go":
			prodLines += countLines(data)
		case filepath.Ext(path) == ".md", filepath.Ext(path) == ".yaml":
			docWords += len(strings.Fields(string(data)))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// walkSources calls fn for every regular file under root, skipping
// directories that start with "_" or ".".
func walkSources(root string, fn func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(path, data)
		return nil
	})
}

// countLines counts non-blank lines.
func countLines(data []byte) int {
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
