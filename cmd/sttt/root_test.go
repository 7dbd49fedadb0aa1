package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScriptCommand(t *testing.T) {
	script := writeFile(t, "nav.json", `{"steps": [
		{"action": "expect_active", "board": 7},
		{"action": "click", "board": 7, "cell": [2, 1]},
		{"action": "expect_active", "board": 10},
		{"action": "click", "board": 10, "cell": [1, 2]},
		{"action": "expect_active", "board": 11}
	]}`)

	out, err := execute(t, "script", script)
	if err != nil {
		t.Fatalf("script failed: %v\n%s", err, out)
	}
	for _, want := range []string{"BoardDeactivated(7)", "BoardActivated(10)", "BoardActivated(11)", "active: 11"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScriptCommand_FailedExpectation(t *testing.T) {
	script := writeFile(t, "bad.json", `{"steps": [{"action": "expect_active", "board": 3}]}`)
	if _, err := execute(t, "script", "-q", script); err == nil {
		t.Fatal("expected failed expectation to return an error")
	}
}

func TestLoadConfig_FileAndFlags(t *testing.T) {
	cfgPath := writeFile(t, "board.yaml", "games_per_row: 3\ngame_rows: 3\n")
	out, err := execute(t, "dump", "--config", cfgPath, "--size", "4", "--active", "0")
	if err != nil {
		t.Fatalf("dump failed: %v\n%s", err, out)
	}
	// 3 rows of boards, each 4 cell rows plus borders.
	if got := len(strings.Split(strings.TrimRight(out, "\n"), "\n")); got != 3*6 {
		t.Errorf("dump has %d lines, want %d:\n%s", got, 3*6, out)
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	cfgPath := writeFile(t, "one.yaml", "games_per_row: 1\ngame_rows: 1\n")
	if out, err := execute(t, "dump", "--config", cfgPath, "--size", "2"); err != nil {
		t.Fatalf("first dump failed: %v\n%s", err, out)
	}
	if err := os.Remove(cfgPath); err != nil {
		t.Fatal(err)
	}

	// A fresh run sees none of the previous flags: default 5x3 grid of 3x3
	// boards, so 3 rows of 5-line boxes.
	out, err := execute(t, "dump")
	if err != nil {
		t.Fatalf("second dump failed: %v\n%s", err, out)
	}
	if got := len(strings.Split(strings.TrimRight(out, "\n"), "\n")); got != 3*5 {
		t.Errorf("dump has %d lines, want %d:\n%s", got, 3*5, out)
	}

	script := writeFile(t, "nav.json", `{"steps": [{"action": "click", "board": 7, "cell": [2, 1]}]}`)
	if _, err := execute(t, "script", "-q", script); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "script", script)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "BoardActivated(10)") {
		t.Errorf("quiet flag leaked into the next run:\n%s", out)
	}
}
