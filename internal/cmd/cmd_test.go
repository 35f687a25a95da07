package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/talgya/flyin/internal/engine"
	"github.com/talgya/flyin/internal/mapfile"
)

// executeCommand runs a cobra command with args and returns captured stdout
// and stderr separately.
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(root)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default so state does not leak
// between executions of the shared command tree.
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

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

const queueMap = `nb_drones: 3
start_hub: A 0 0
end_hub: B 1 0
connection: A-B
`

const restrictedMap = `nb_drones: 1
start_hub: A 0 0 [color=green]
hub: R 1 0 [zone=restricted color=red]
end_hub: C 2 0
connection: A-R
connection: R-C
`

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "flyin" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "flyin")
	}

	expected := []string{"run", "route", "generate", "config"}
	cmds := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmds[c.Name()] = true
	}
	for _, name := range expected {
		if !cmds[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name string
		m    string
		want string
	}{
		{
			name: "single link queue",
			m:    queueMap,
			want: "D1-B\nD2-B\nD3-B\nTurns: 3\n",
		},
		{
			name: "restricted hub",
			m:    restrictedMap,
			want: "D1-A-R\nD1-R\nD1-C\nTurns: 3\n",
		},
		{
			name: "no drones",
			m:    "nb_drones: 0\nstart_hub: A 0 0\nend_hub: B 1 0\n",
			want: "Turns: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, rootCmd, "run", writeMap(t, tt.m), "--color", "never")
			if err != nil {
				t.Fatalf("run error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRunCommand_Errors(t *testing.T) {
	t.Run("turn limit", func(t *testing.T) {
		_, _, err := executeCommand(t, rootCmd, "run", writeMap(t, queueMap), "--max-turns", "1")
		if !errors.Is(err, engine.ErrTurnLimit) {
			t.Errorf("error = %v, want ErrTurnLimit", err)
		}
	})

	t.Run("no route", func(t *testing.T) {
		m := "nb_drones: 1\nstart_hub: A 0 0\nend_hub: B 1 0\n"
		_, _, err := executeCommand(t, rootCmd, "run", writeMap(t, m))
		if !errors.Is(err, engine.ErrNoRoute) {
			t.Errorf("error = %v, want ErrNoRoute", err)
		}
	})

	t.Run("blocked start", func(t *testing.T) {
		m := "nb_drones: 1\nstart_hub: A 0 0 [zone=blocked]\nend_hub: B 1 0\nconnection: A-B\n"
		_, _, err := executeCommand(t, rootCmd, "run", writeMap(t, m))
		if !errors.Is(err, engine.ErrNoRoute) {
			t.Errorf("error = %v, want ErrNoRoute", err)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		_, _, err := executeCommand(t, rootCmd, "run", writeMap(t, "hub: X 0 0 [zone=nope]\n"))
		var perr *mapfile.ParseError
		if !errors.As(err, &perr) || perr.Line != 1 {
			t.Errorf("error = %v, want ParseError on line 1", err)
		}
	})

	t.Run("bad color mode", func(t *testing.T) {
		_, _, err := executeCommand(t, rootCmd, "run", writeMap(t, queueMap), "--color", "sometimes")
		if err == nil {
			t.Error("expected an error for an invalid color mode")
		}
	})
}

func TestRunCommand_LogsToStderr(t *testing.T) {
	out, errOut, err := executeCommand(t, rootCmd, "run", writeMap(t, queueMap), "--log-level", "info")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.Contains(out, "run_id") {
		t.Errorf("log output leaked into stdout: %q", out)
	}
	if !strings.Contains(errOut, "run_id=") || !strings.Contains(errOut, "simulation finished") {
		t.Errorf("stderr = %q, want run summary with run_id", errOut)
	}
}

func TestRouteCommand(t *testing.T) {
	out, _, err := executeCommand(t, rootCmd, "route", writeMap(t, restrictedMap))
	if err != nil {
		t.Fatalf("route error: %v", err)
	}
	want := "A -> R -> C\nHops: 2\nCost: 7\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := executeCommand(t, rootCmd, "generate", "--width", "4", "--height", "3", "--seed", "7", "--drones", "2")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	sc, err := mapfile.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("generated map does not parse: %v\n%s", err, out)
	}
	if sc.Start != "H0_0" || sc.End != "H3_2" || sc.Drones != 2 {
		t.Errorf("scenario = %s->%s x%d", sc.Start, sc.End, sc.Drones)
	}
	if sc.Graph.HubCount() != 12 {
		t.Errorf("HubCount() = %d, want 12", sc.Graph.HubCount())
	}

	again, _, err := executeCommand(t, rootCmd, "generate", "--width", "4", "--height", "3", "--seed", "7", "--drones", "2")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if again != out {
		t.Error("same seed produced a different map")
	}
}

func TestGenerateCommand_InvalidGrid(t *testing.T) {
	_, _, err := executeCommand(t, rootCmd, "generate", "--width", "1", "--height", "1")
	if err == nil {
		t.Error("expected an error for a 1x1 grid")
	}
}

func TestConfigShow(t *testing.T) {
	out, _, err := executeCommand(t, rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	for _, want := range []string{"max_turns: 10000", "color: auto", "level: warn", "width: 6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode       string
		wantStyled bool
		wantErr    bool
	}{
		{mode: "always", wantStyled: true},
		{mode: "never"},
		{mode: "auto"},
		{mode: ""},
		{mode: "rainbow", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			r, err := newRenderer(tt.mode, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newRenderer(%q) error = %v", tt.mode, err)
			}
			if err == nil && r.Styled() != tt.wantStyled {
				t.Errorf("Styled() = %v, want %v", r.Styled(), tt.wantStyled)
			}
		})
	}
}
