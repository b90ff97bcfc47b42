// Package audio bridges the gateway to host microphone and speaker devices.
// The gateway is headless, so the default devices shell out to host tools
// (arecord/aplay by default); everything above them is device-agnostic.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrPermissionDenied means the capture device is missing or not accessible.
// It is recoverable: the user is alerted and the flow aborts.
var ErrPermissionDenied = errors.New("audio: capture device unavailable")

// Input is a microphone device.
type Input interface {
	// Request asks for access to the device before any capture starts.
	Request(ctx context.Context) error
	// Begin starts capturing into a fresh file.
	Begin(ctx context.Context) error
	// End finalizes the capture and returns the recorded file path.
	End() (string, error)
}

// Output is a speaker device. Play blocks until playback completes or the
// context is cancelled.
type Output interface {
	Play(ctx context.Context, path string) error
}

// ExecInput records by running a host capture command with the output file
// appended as its final argument.
type ExecInput struct {
	argv []string
	dir  string

	cmd  *exec.Cmd
	path string
}

// NewExecInput builds an input from a shell-style command string, e.g.
// "arecord -q -f cd -t wav". Recorded files land in dir (or the system temp
// directory when empty).
func NewExecInput(command, dir string) *ExecInput {
	return &ExecInput{argv: strings.Fields(command), dir: dir}
}

// Request verifies the capture tool exists. A missing tool is the headless
// analog of a denied microphone permission.
func (in *ExecInput) Request(_ context.Context) error {
	if len(in.argv) == 0 {
		return ErrPermissionDenied
	}
	if _, err := exec.LookPath(in.argv[0]); err != nil {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, in.argv[0])
	}
	return nil
}

// Begin starts the capture process.
func (in *ExecInput) Begin(ctx context.Context) error {
	dir := in.dir
	if dir == "" {
		dir = os.TempDir()
	}
	in.path = filepath.Join(dir, fmt.Sprintf("speech-%d.wav", time.Now().UnixNano()))

	args := append(append([]string{}, in.argv[1:]...), in.path)
	cmd := exec.CommandContext(ctx, in.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	in.cmd = cmd
	return nil
}

// End stops the capture process and returns the recorded file path.
func (in *ExecInput) End() (string, error) {
	if in.cmd == nil {
		return "", errors.New("audio: capture not started")
	}
	// Interrupt lets the recorder flush its WAV header before exiting.
	_ = in.cmd.Process.Signal(os.Interrupt)
	_ = in.cmd.Wait()
	in.cmd = nil
	return in.path, nil
}

// ExecOutput plays audio files by running a host playback command.
type ExecOutput struct {
	argv []string
}

// NewExecOutput builds an output from a shell-style command string, e.g.
// "aplay -q".
func NewExecOutput(command string) *ExecOutput {
	return &ExecOutput{argv: strings.Fields(command)}
}

// Play runs the playback command and waits for it to finish.
func (out *ExecOutput) Play(ctx context.Context, path string) error {
	if len(out.argv) == 0 {
		return errors.New("audio: no playback command configured")
	}
	args := append(append([]string{}, out.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, out.argv[0], args...)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}
