// Package tuitest drives the spltui binary inside a pseudo terminal and
// records what it draws, so end-to-end tests can assert on rendered frames.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth    = 100
	defaultHeight   = 32
	defaultTimeout  = 5 * time.Second
	defaultKeyGap   = 300 * time.Millisecond
	waitPollEvery   = 20 * time.Millisecond
	readBufferBytes = 4096
)

// Step is one scripted interaction. The harness sleeps for Delay, then waits
// until the rendered output contains WaitFor (when set), then writes Input.
type Step struct {
	Delay   time.Duration
	WaitFor string
	Input   []byte
}

// Config configures how the harness spawns and drives the program.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
}

// Recording contains the raw terminal stream plus parsed frames.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Keys turns a list of key sequences into steps spaced by gap. The program
// debounces input, so a gap longer than its threshold keeps every key.
func Keys(gap time.Duration, keys ...[]byte) []Step {
	if gap <= 0 {
		gap = defaultKeyGap
	}
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, Step{Delay: gap, Input: k})
	}
	return steps
}

// Text splits s into one key per rune.
func Text(s string) [][]byte {
	out := make([][]byte, 0, len(s))
	for _, r := range s {
		out = append(out, []byte(string(r)))
	}
	return out
}

// syncBuffer guards the capture buffer shared by the reader goroutine and
// WaitFor polling.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

func (b *syncBuffer) containsPlain(s string) bool {
	return strings.Contains(stripANSI(string(b.Bytes())), s)
}

// Run executes the configured command inside a PTY, replays the scripted
// inputs, and captures every byte written to the terminal.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultHeight
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	allowedCodes := map[int]struct{}{0: {}}
	for _, code := range cfg.AllowedExitCodes {
		allowedCodes[code] = struct{}{}
	}

	winsize := &pty.Winsize{Rows: uint16(height), Cols: uint16(width)}
	ptmx, err := pty.StartWithSize(cmd, winsize)
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	output := &syncBuffer{}
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		responder := newTerminalResponder(ptmx)
		buf := make([]byte, readBufferBytes)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				chunk := buf[:n]
				responder.Process(chunk)
				_, _ = output.Write(chunk)
			}
			if readErr != nil {
				return
			}
		}
	}()

	start := time.Now()
	for i, step := range cfg.Steps {
		if err := sleep(ctx, step.Delay); err != nil {
			return nil, fmt.Errorf("tuitest: step %d: %w", i, err)
		}
		if step.WaitFor != "" {
			if err := waitFor(ctx, output, step.WaitFor); err != nil {
				return nil, fmt.Errorf("tuitest: step %d waiting for %q: %w", i, step.WaitFor, err)
			}
		}
		if len(step.Input) > 0 {
			if _, err := ptmx.Write(step.Input); err != nil {
				return nil, fmt.Errorf("tuitest: write input: %w", err)
			}
		}
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
	}()

	select {
	case err := <-waitErr:
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
			}
			if _, ok := allowedCodes[exitErr.ExitCode()]; !ok {
				return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
			}
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	// Closing the PTY lets the reader goroutine finish draining.
	_ = ptmx.Close()
	<-copyDone

	raw := output.Bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func waitFor(ctx context.Context, output *syncBuffer, want string) error {
	ticker := time.NewTicker(waitPollEvery)
	defer ticker.Stop()
	for {
		if output.containsPlain(want) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// Key sequences as a VT100-style terminal sends them.
var (
	KeyEnter     = []byte{'\r'}
	KeyEsc       = []byte{27}
	KeyBackspace = []byte{127}
	KeyCtrlC     = []byte{3}
	KeyUp        = []byte("\x1b[A")
	KeyDown      = []byte("\x1b[B")
	KeyRight     = []byte("\x1b[C")
	KeyLeft      = []byte("\x1b[D")
)
