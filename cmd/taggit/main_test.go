// ABOUTME: In-process tests for taggit commands.
// ABOUTME: Runs the root command against an in-memory attribute store.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes taggit with args against store and returns stdout.
func run(t *testing.T, store xattrs.Store, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	newStore = func() xattrs.Store { return store }

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--platform", "darwin", "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddListRemove(t *testing.T) {
	store := xattrs.NewMemStore()

	if _, err := run(t, store, "add", "f.txt", "t1:red", "t2:blue"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, store, "ls", "--json", "f.txt")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	var results []struct {
		Path string `json:"path"`
		Tags []struct {
			Name      string `json:"name"`
			ColorName string `json:"color_name"`
			ColorCode int    `json:"color_code"`
		} `json:"tags"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if len(results) != 1 || len(results[0].Tags) != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Tags[0].ColorCode != 6 || results[0].Tags[1].ColorName != "BLUE" {
		t.Errorf("unexpected tags %+v", results[0].Tags)
	}

	if _, err := run(t, store, "rm", "f.txt", "t1:red"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	raw := xattrs.NewAttribute(store).ReadRaw("f.txt")
	if len(raw) != 1 || raw[0] != "t2\n4" {
		t.Errorf("unexpected attribute %q", raw)
	}
}

func TestAddDefaultColorFlag(t *testing.T) {
	store := xattrs.NewMemStore()

	if _, err := run(t, store, "add", "--color", "green", "f.txt", "a", "b:7"); err != nil {
		t.Fatal(err)
	}
	raw := xattrs.NewAttribute(store).ReadRaw("f.txt")
	want := []string{"a\n2", "b\n7"}
	if strings.Join(raw, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", raw, want)
	}
}

func TestAddInvalidArgumentWritesNothing(t *testing.T) {
	store := xattrs.NewMemStore()

	_, err := run(t, store, "add", "f.txt", "good", ":red")
	if !errors.Is(err, tags.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if exitCode(err) != exitInvalidArg {
		t.Errorf("exit code = %d, want %d", exitCode(err), exitInvalidArg)
	}
	if keys, _ := store.List("f.txt"); len(keys) != 0 {
		t.Errorf("expected no attributes written, got %q", keys)
	}
}

func TestClearAndHas(t *testing.T) {
	store := xattrs.NewMemStore()
	if _, err := run(t, store, "add", "f.txt", "keep:orange"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, store, "ls", "--has", "keep:orange", "f.txt")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if strings.TrimSpace(out) != "f.txt" {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, store, "clear", "f.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, store, "ls", "--has", "keep:orange", "f.txt"); !errors.Is(err, errTagMissing) {
		t.Errorf("expected errTagMissing, got %v", err)
	}
}

func TestUnsupportedPlatform(t *testing.T) {
	_, err := run(t, xattrs.NewMemStore(), "--platform", "windows", "ls", "f.txt")
	if err == nil || !strings.Contains(err.Error(), "unsupported platform") {
		t.Errorf("expected unsupported platform error, got %v", err)
	}
	if exitCode(err) != exitError {
		t.Errorf("exit code = %d, want %d", exitCode(err), exitError)
	}
}

func TestExportYAML(t *testing.T) {
	store := xattrs.NewMemStore()
	if _, err := run(t, store, "add", "f.txt", "work:purple"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, store, "export", "--format", "yaml", "f.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"path: f.txt", "name: work", "color_name: PURPLE", "color_code: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in export:\n%s", want, out)
		}
	}
}

func TestShowRaw(t *testing.T) {
	store := xattrs.NewMemStore()
	if _, err := run(t, store, "add", "f.txt", "work:red"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, store, "show", "--raw", "f.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "| work | RED | 6 |") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestParseTagArg(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"work", "work\n0"},
		{"work:red", "work\n6"},
		{"work:", "work\n0"},
		{"a:b:4", "a:b\n4"},
		{"time 12:30", "time 12\n0"},
	}

	for _, tt := range tests {
		got, err := parseTagArg(tt.arg, "")
		if err != nil {
			t.Fatalf("parseTagArg(%q): %v", tt.arg, err)
		}
		if got.Wire() != tt.want {
			t.Errorf("parseTagArg(%q) = %q, want %q", tt.arg, got.Wire(), tt.want)
		}
	}

	for _, bad := range []string{"", ":", ":red"} {
		if _, err := parseTagArg(bad, ""); !errors.Is(err, tags.ErrInvalidArgument) {
			t.Errorf("parseTagArg(%q) error = %v", bad, err)
		}
	}
}
