package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"guessnerd/internal/game"
	"guessnerd/internal/logging"
)

// execute runs the command tree with args, feeding stdin and capturing stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(logging.Reset)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestPlayCmd_SingleValueRange(t *testing.T) {
	out, err := execute(t, "3\nabc\n9\n7\n", "play", "--config", tempConfig(t), "--min", "7", "--max", "7")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	want := []string{"Guess the number!", "Too small!", "Please type a number!", "Too big!", "You guessed: 7", "You win!"}
	last := -1
	for _, w := range want {
		idx := strings.Index(out, w)
		if idx < 0 {
			t.Fatalf("missing %q in output:\n%s", w, out)
		}
		if idx < last {
			t.Fatalf("%q out of order in output:\n%s", w, out)
		}
		last = idx
	}
}

func TestRootCmd_PlaysByDefault(t *testing.T) {
	out, err := execute(t, "5\n", "--config", tempConfig(t), "--min", "5", "--max", "5")
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !strings.Contains(out, "You win!") {
		t.Fatalf("expected a win, got:\n%s", out)
	}
}

func TestPlayCmd_InputClosed(t *testing.T) {
	_, err := execute(t, "1\n", "play", "--config", tempConfig(t), "--min", "50", "--max", "60")
	if !errors.Is(err, game.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestPlayCmd_InvalidRange(t *testing.T) {
	_, err := execute(t, "", "play", "--config", tempConfig(t), "--min", "10", "--max", "2")
	if err == nil {
		t.Fatal("expected invalid range error")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlayCmd_MaxIntRejected(t *testing.T) {
	_, err := execute(t, "", "play", "--config", tempConfig(t), "--max", strconv.Itoa(math.MaxInt))
	if err == nil {
		t.Fatal("expected max overflow to be rejected")
	}
	if !strings.Contains(err.Error(), "max must be below") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlayCmd_UsesConfigFile(t *testing.T) {
	path := tempConfig(t)
	content := "game:\n  min: 3\n  max: 3\nmessages:\n  win: Bravo!\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "3\n", "play", "--config", path)
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !strings.Contains(out, "Bravo!") {
		t.Fatalf("expected custom win message, got:\n%s", out)
	}
}

func TestConfigCmd_InitAndShow(t *testing.T) {
	path := tempConfig(t)

	out, err := execute(t, "", "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Fatalf("expected confirmation, got: %s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := execute(t, "", "config", "init", "--config", path); err == nil {
		t.Fatal("expected second init to refuse overwrite")
	}
	if _, err := execute(t, "", "config", "init", "--force", "--config", path); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}

	out, err = execute(t, "", "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"min: 1", "max: 100", "mode: plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestConfigCmd_InitForceReplacesCorruptFile(t *testing.T) {
	path := tempConfig(t)
	if err := os.WriteFile(path, []byte("game: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "config", "show", "--config", path); err == nil {
		t.Fatal("expected show to fail on a corrupt file")
	}
	if _, err := execute(t, "", "config", "init", "--config", path); err == nil {
		t.Fatal("expected init without --force to refuse overwrite")
	}

	if _, err := execute(t, "", "config", "init", "--force", "--config", path); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
	out, err := execute(t, "", "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show after repair failed: %v", err)
	}
	if !strings.Contains(out, "max: 100") {
		t.Fatalf("expected default config, got:\n%s", out)
	}
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "", "rules", "--plain", "--config", tempConfig(t))
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	for _, want := range []string{"How to play", "100", "Too small!"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version", "--config", tempConfig(t))
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != "guess "+version {
		t.Fatalf("unexpected version output: %q", out)
	}
}
