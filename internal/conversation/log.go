// Package conversation holds the in-memory message log for the chat screen.
// The log is append-only and lives only as long as the process: history is
// deliberately not persisted anywhere.
package conversation

import (
	"sync"

	"github.com/krishisahayak/app-backend/internal/types"
)

// Greeting is the seeded assistant welcome, shown before any user input.
const Greeting = "नमस्ते! मैं आपका कृषि सहायक AI हूँ। मैं आपकी खेती से जुड़ी समस्याओं, मौसम, या पौधों की बीमारियों के बारे में मदद कर सकता हूँ। आप क्या जानना चाहेंगे?"

// Observer is notified after each append.
type Observer func(types.Message)

// Log is an ordered, append-only message log. Messages are never edited,
// reordered, or removed.
type Log struct {
	mu       sync.RWMutex
	messages []types.Message
	observer Observer
}

// NewLog creates a log seeded with the assistant greeting.
func NewLog() *Log {
	l := &Log{}
	l.messages = append(l.messages, types.NewMessage(Greeting, types.SenderBot))
	return l
}

// SetObserver registers a callback invoked after every append. One observer
// is enough: the UI event hub fans out from there.
func (l *Log) SetObserver(fn Observer) {
	l.mu.Lock()
	l.observer = fn
	l.mu.Unlock()
}

// Append adds a message to the end of the log.
func (l *Log) Append(msg types.Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	fn := l.observer
	l.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

// Messages returns a snapshot of the full ordered log.
func (l *Log) Messages() []types.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len reports the number of messages in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Find returns the message with the given id, if present.
func (l *Log) Find(id string) (types.Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, m := range l.messages {
		if m.ID.String() == id {
			return m, true
		}
	}
	return types.Message{}, false
}
