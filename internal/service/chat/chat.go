// Package chat sequences the conversation flows: text send, voice
// round-trip, and per-message speech playback.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/audio"
	"github.com/krishisahayak/app-backend/internal/backend"
	"github.com/krishisahayak/app-backend/internal/conversation"
	"github.com/krishisahayak/app-backend/internal/types"
)

// Fallback replies for the chat flow. Chat transport failures degrade to a
// fixed bot message instead of an alert so the conversation always answers.
const (
	FallbackNoResponse = "No response from server"
	FallbackFailed     = "Failed to get response"
)

var (
	// ErrEmptyPrompt means the draft was empty after trimming; nothing was
	// sent and nothing was appended.
	ErrEmptyPrompt = errors.New("chat: empty prompt")
	// ErrBusy means a send is already outstanding. The UI disables the send
	// control in this state, so hitting it is a no-op.
	ErrBusy = errors.New("chat: send already in progress")
	// ErrMessageNotFound means a speak request named an unknown message.
	ErrMessageNotFound = errors.New("chat: message not found")
)

// Assistant is the slice of the backend client the chat flows use.
type Assistant interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Notifier carries conversation events and user-visible alerts to the UI
// layer. Implementations must not block.
type Notifier interface {
	MessageAppended(msg types.Message)
	Alert(kind, message string)
}

// Service orchestrates the chat screen's flows.
type Service struct {
	log      *conversation.Log
	backend  Assistant
	capture  *audio.Capture
	player   *audio.Player
	notifier Notifier
	logger   *logrus.Logger

	autoSendDelay time.Duration

	mu      sync.Mutex
	draft   string
	sending bool
}

// NewService creates the chat service. notifier may be nil.
func NewService(log *conversation.Log, assistant Assistant, capture *audio.Capture, player *audio.Player, notifier Notifier, logger *logrus.Logger, autoSendDelay time.Duration) *Service {
	s := &Service{
		log:           log,
		backend:       assistant,
		capture:       capture,
		player:        player,
		notifier:      notifier,
		logger:        logger,
		autoSendDelay: autoSendDelay,
	}
	log.SetObserver(s.messageAppended)
	return s
}

func (s *Service) messageAppended(msg types.Message) {
	if s.notifier != nil {
		s.notifier.MessageAppended(msg)
	}
}

func (s *Service) alert(kind, message string) {
	s.logger.WithFields(logrus.Fields{"kind": kind, "alert": message}).Warn("user alert")
	if s.notifier != nil {
		s.notifier.Alert(kind, message)
	}
}

// Messages returns the ordered conversation snapshot.
func (s *Service) Messages() []types.Message {
	return s.log.Messages()
}

// Draft returns the current input draft.
func (s *Service) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the input draft.
func (s *Service) SetDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
}

// Sending reports whether a send is outstanding. The UI uses it to disable
// the send control.
func (s *Service) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Send runs the send flow on the given prompt: append the user message,
// fetch the reply, append the bot message. The user message keeps the raw
// text; only the emptiness check trims. A transport failure never escapes —
// it becomes the fixed fallback reply.
func (s *Service) Send(ctx context.Context, prompt string) (types.Message, error) {
	if strings.TrimSpace(prompt) == "" {
		return types.Message{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return types.Message{}, ErrBusy
	}
	s.sending = true
	s.draft = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sending = false
		s.mu.Unlock()
	}()

	s.log.Append(types.NewMessage(prompt, types.SenderUser))

	reply := s.fetchReply(ctx, prompt)
	botMsg := types.NewMessage(reply, types.SenderBot)
	s.log.Append(botMsg)
	return botMsg, nil
}

// SendDraft runs the send flow on the current draft.
func (s *Service) SendDraft(ctx context.Context) (types.Message, error) {
	return s.Send(ctx, s.Draft())
}

func (s *Service) fetchReply(ctx context.Context, prompt string) string {
	reply, err := s.backend.Chat(ctx, prompt)
	if err != nil {
		if errors.Is(err, backend.ErrEmptyResponse) {
			return FallbackNoResponse
		}
		s.logger.WithError(err).Error("chat request failed")
		return FallbackFailed
	}
	return reply
}

// ToggleMic runs the voice flow. Idle: start recording (a denied device
// alerts and stays Idle). Recording: stop, transcribe, populate the draft,
// and auto-send after a short settle delay. Empty or failed recognition
// alerts and leaves the draft unchanged.
func (s *Service) ToggleMic(ctx context.Context) error {
	if !s.capture.Recording() {
		if err := s.capture.Start(ctx); err != nil {
			if errors.Is(err, audio.ErrPermissionDenied) {
				s.alert("mic", "Unable to access microphone.")
			} else {
				s.alert("mic", "Could not start recording.")
			}
			return err
		}
		return nil
	}

	path, err := s.capture.Stop()
	if err != nil {
		if errors.Is(err, audio.ErrNotRecording) {
			return nil
		}
		s.alert("mic", "Could not finish recording.")
		return err
	}

	text, err := s.backend.Transcribe(ctx, path)
	if err != nil {
		s.alert("stt", "Could not transcribe audio.")
		return err
	}

	s.SetDraft(text)
	time.AfterFunc(s.autoSendDelay, func() {
		// The settle delay mirrors the screen letting input state update
		// before auto-sending; it is not a timing contract.
		if _, err := s.SendDraft(context.WithoutCancel(ctx)); err != nil {
			s.logger.WithError(err).Debug("auto-send skipped")
		}
	})
	return nil
}

// Recording reports whether the mic is live.
func (s *Service) Recording() bool {
	return s.capture.Recording()
}

// Speak synthesizes one message's text and plays it. Independent of any
// outstanding send; re-entrant across messages.
func (s *Service) Speak(ctx context.Context, messageID string) error {
	msg, ok := s.log.Find(messageID)
	if !ok {
		return ErrMessageNotFound
	}

	blob, err := s.backend.Synthesize(ctx, msg.Text)
	if err != nil {
		s.alert("tts", "Could not play audio.")
		return err
	}

	if err := s.player.Play(ctx, blob); err != nil {
		s.alert("tts", "Could not play audio.")
		return err
	}
	return nil
}
