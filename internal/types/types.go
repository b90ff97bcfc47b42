package types

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn in the conversation. ID and Sender are fixed at
// creation; V7 UUIDs are timestamp-derived, so ids order by creation time.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message with a fresh time-ordered id.
func NewMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.Must(uuid.NewV7()),
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now().UTC(),
	}
}

// MandiQuote is one row of a mandi price table.
type MandiQuote struct {
	Date      string `json:"date"`
	State     string `json:"state"`
	District  string `json:"district"`
	Market    string `json:"market"`
	Commodity string `json:"commodity"`
	MinPrice  string `json:"min_price"`
	MaxPrice  string `json:"max_price"`
}

// MandiQuery identifies a market lookup. Field casing follows the backend's
// request contract (state lowercase, the rest capitalised).
type MandiQuery struct {
	State     string `json:"state"`
	District  string `json:"District"`
	Market    string `json:"Market"`
	Commodity string `json:"Commodity"`
}

// DailyWeather is one day of a seven-day forecast or history window.
type DailyWeather struct {
	Date      string  `json:"date"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
}

// PumpStatus reports the pump controller's reply to a start/stop command.
type PumpStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// User is a locally registered account. Credentials live in a plain JSON
// file: this is a stand-in for a real user database, not an auth system.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
