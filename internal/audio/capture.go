package audio

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrAlreadyRecording is returned when Start is called mid-capture. Callers
// are expected to toggle: stop the active session first.
var ErrAlreadyRecording = errors.New("audio: already recording")

// ErrNotRecording is returned when Stop is called with no active session.
var ErrNotRecording = errors.New("audio: not recording")

// Capture owns the single microphone session: Idle until Start succeeds,
// Recording until Stop. There is never more than one active recording.
type Capture struct {
	in     Input
	logger *logrus.Logger

	mu        sync.Mutex
	recording bool
}

// NewCapture creates a capture controller for the given input device.
func NewCapture(in Input, logger *logrus.Logger) *Capture {
	return &Capture{in: in, logger: logger}
}

// Recording reports whether a capture session is active.
func (c *Capture) Recording() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recording
}

// Start requests device access and begins recording. On a denied request
// the controller stays Idle and the error wraps ErrPermissionDenied.
func (c *Capture) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recording {
		return ErrAlreadyRecording
	}
	if err := c.in.Request(ctx); err != nil {
		return err
	}
	if err := c.in.Begin(ctx); err != nil {
		return err
	}
	c.recording = true
	c.logger.Debug("recording started")
	return nil
}

// Stop finalizes the active recording and returns the audio file path.
// Stopping while Idle is a no-op surfaced as ErrNotRecording.
func (c *Capture) Stop() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.recording {
		return "", ErrNotRecording
	}
	c.recording = false

	path, err := c.in.End()
	if err != nil {
		return "", err
	}
	c.logger.WithField("path", path).Debug("recording stopped")
	return path, nil
}
