package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/funvibe/elz/internal/config"
)

var moduleID = regexp.MustCompile(`\([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\)`)

// TestFunctional builds every program tree under testdata and compares
// stdout and stderr with the .want file next to it.
func TestFunctional(t *testing.T) {
	testFiles, err := filepath.Glob(filepath.Join("testdata", "*"+config.SourceFileExt))
	if err != nil {
		t.Fatalf("Failed to list testdata: %v", err)
	}
	if len(testFiles) == 0 {
		t.Skip("No test files with .want found")
	}

	for _, testFile := range testFiles {
		testFile := testFile
		testName := strings.TrimSuffix(filepath.Base(testFile), config.SourceFileExt)

		t.Run(testName, func(t *testing.T) {
			wantBytes, err := os.ReadFile(strings.TrimSuffix(testFile, config.SourceFileExt) + ".want")
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}
			want := strings.TrimSpace(string(wantBytes))

			var stdout, stderr bytes.Buffer
			run([]string{"build", filepath.ToSlash(testFile)}, &stdout, &stderr)

			// Combine: stdout first, then stderr
			stdoutStr := moduleID.ReplaceAllString(strings.TrimSpace(stdout.String()), "(ID)")
			stderrStr := strings.TrimSpace(stderr.String())
			got := stdoutStr
			if stderrStr != "" {
				if got != "" {
					got += "\n"
				}
				got += stderrStr
			}

			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}
