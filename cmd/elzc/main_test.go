package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const program = `
declarations:
  - class:
      name: Foo
      members:
        - field: {name: a, type: int}
        - static:
            name: new
            returns: Foo
            body: {construct: {class: Foo, fields: [{name: a, value: {int: 1}}]}}
        - method: {name: get, returns: int, body: {int: 2}}
  - variable:
      name: foo
      type: Foo
      value: {call: {callee: {static: {class: Foo, name: new}}}}
  - variable:
      name: n
      type: int
      value: {call: {callee: {member: {of: {ident: foo}, name: get}}}}
`

func writeTree(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.elz.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckSucceeds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"check", writeTree(t, program)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
}

func TestBuildListsDefinitions(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"build", writeTree(t, program)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{
		"type Foo (1 fields)",
		"func Foo::new(): Foo",
		"func Foo::get(Foo): int",
		"var foo: Foo",
		"var n: int",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestCheckReportsFirstError(t *testing.T) {
	src := `
declarations:
  - variable: {name: x, type: int, value: {string: nope}}
  - variable: {name: x, type: int, value: {int: 1}}
`
	var stdout, stderr bytes.Buffer
	code := run([]string{"build", writeTree(t, src)}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	// Naming runs first, so the redefinition is reported before the mismatch.
	if !strings.Contains(stderr.String(), "error[E001]") {
		t.Errorf("unexpected diagnostics:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing must be lowered after a failed check, got:\n%s", stdout.String())
	}
}

func TestUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("no arguments: exit code %d, want 2", code)
	}
	if code := run([]string{"lint", "x.elz.yaml"}, &stdout, &stderr); code != 2 {
		t.Errorf("unknown command: exit code %d, want 2", code)
	}
	stdout.Reset()
	if code := run([]string{"help"}, &stdout, &stderr); code != 0 || !strings.Contains(stdout.String(), "Usage") {
		t.Errorf("help: exit code %d, output %q", code, stdout.String())
	}
}

func TestConfigFileIsApplied(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "main.elz.yaml")
	if err := os.WriteFile(tree, []byte(program), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(cfgPath, []byte("intrinsic_types: [Foo]\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"build", tree, "-config", cfgPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	if strings.Contains(stdout.String(), "type Foo") {
		t.Errorf("intrinsic class must not be lowered:\n%s", stdout.String())
	}
}
