package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Player plays synthesized speech. It holds a single playback slot:
// starting a new playback forcibly releases whatever was playing before, so
// two sessions never hold resources at once.
type Player struct {
	out    Output
	dir    string
	logger *logrus.Logger

	mu      sync.Mutex
	current *playbackSession
}

// playbackSession tracks one in-flight playback. Its resources are released
// exactly once, whether playback finishes, fails, or is preempted.
type playbackSession struct {
	path    string
	cancel  context.CancelFunc
	release sync.Once
	done    chan struct{}
}

func (s *playbackSession) free() {
	s.release.Do(func() {
		s.cancel()
		_ = os.Remove(s.path)
	})
}

// NewPlayer creates a player for the given output device. Temp audio files
// land in dir (or the system temp directory when empty).
func NewPlayer(out Output, dir string, logger *logrus.Logger) *Player {
	return &Player{out: out, dir: dir, logger: logger}
}

// Play decodes the audio blob into a playable file and starts playback. It
// returns once playback has started; completion is observed in the
// background and releases the session's resources.
func (p *Player) Play(ctx context.Context, blob []byte) error {
	dir := p.dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("speak-%d.audio", time.Now().UnixNano()))
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}

	playCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	session := &playbackSession{path: path, cancel: cancel, done: make(chan struct{})}

	p.mu.Lock()
	if prev := p.current; prev != nil {
		prev.free()
	}
	p.current = session
	p.mu.Unlock()

	go func() {
		defer close(session.done)
		if err := p.out.Play(playCtx, path); err != nil {
			p.logger.WithError(err).Warn("playback failed")
		}
		session.free()

		p.mu.Lock()
		if p.current == session {
			p.current = nil
		}
		p.mu.Unlock()
	}()

	return nil
}

// Active reports whether a playback session is in flight.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != nil
}

// Close releases any in-flight playback and waits for it to wind down.
func (p *Player) Close() {
	p.mu.Lock()
	session := p.current
	p.current = nil
	p.mu.Unlock()

	if session != nil {
		session.free()
		<-session.done
	}
}
