package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/spltui/internal/tuitest"
)

func TestSolveOneVarEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a pty")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	// "29" then backspace leaves a = 2; left and right return to b before submit.
	keys := [][]byte{
		[]byte("1"), []byte("2"), []byte("9"), tuitest.KeyBackspace,
		tuitest.KeyRight, []byte("-"), []byte("4"),
		tuitest.KeyLeft, tuitest.KeyRight, tuitest.KeyEnter,
	}
	steps := append([]tuitest.Step{{WaitFor: "SPLSV"}}, tuitest.Keys(0, keys...)...)
	steps = append(steps, tuitest.Step{WaitFor: "x = 2.00"})
	// Keys after the result stay spaced past the debounce window.
	steps = append(steps, tuitest.Keys(0, tuitest.KeyDown, tuitest.KeyUp, []byte("q"))...)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen"},
		Dir:     t.TempDir(),
		Env:     []string{"HOME=" + t.TempDir()},
		Width:   100,
		Height:  40,
		Steps:   steps,
		Timeout: 15 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	text := rec.PlainText()
	for _, want := range []string{"Equation:", "x = 4 / 2", "Result:", "x = 2.00"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q\n%s", want, text)
		}
	}
}

func TestStartFlagOpensTwoVarForm(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a pty")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--spldv", "--theme", "light"},
		Dir:     t.TempDir(),
		Env:     []string{"HOME=" + t.TempDir()},
		Steps: []tuitest.Step{
			{WaitFor: "c2:"},
			{Delay: 300 * time.Millisecond, Input: tuitest.KeyEsc},
			{WaitFor: "two variables"},
			{Delay: 300 * time.Millisecond, Input: tuitest.KeyCtrlC},
		},
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if _, ok := rec.FrameContaining("a1:"); !ok && !strings.Contains(rec.PlainText(), "a1:") {
		t.Fatalf("two-variable form not rendered:\n%s", rec.PlainText())
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "spltui-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
