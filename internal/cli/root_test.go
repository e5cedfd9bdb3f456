package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	fio "github.com/matzehuels/familytree/pkg/io"
	"github.com/matzehuels/familytree/pkg/render/rendertest"
)

// isolate points config and cache lookups at fresh temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

// fixtureFile writes the shared fixture records to a JSON file.
func fixtureFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.json")
	if err := fio.Export(rendertest.Store(t), path); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"report", "check", "convert", "seed", "serve", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestConfigFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "familytree.toml")
	if err := os.WriteFile(path, []byte("[report]\nformat = \"csv\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "report", fixtureFile(t), "--root", "I1", "--config", path, "--no-cache")
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if !bytes.HasPrefix([]byte(out), []byte("id,gender,")) {
		t.Errorf("config format not applied:\n%s", out)
	}

	if _, err := run(t, "report", fixtureFile(t), "--root", "I1", "--config", filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("missing explicit config should fail")
	}
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "completion", "zsh")
	if err != nil || !bytes.Contains([]byte(out), []byte("familytree")) {
		t.Errorf("completion zsh = %v, %d bytes", err, len(out))
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
