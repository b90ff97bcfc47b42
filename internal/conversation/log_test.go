package conversation

import (
	"testing"

	"github.com/krishisahayak/app-backend/internal/types"
)

func TestNewLogSeedsGreeting(t *testing.T) {
	log := NewLog()

	msgs := log.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(msgs))
	}
	if msgs[0].Sender != types.SenderBot {
		t.Errorf("greeting sender = %q, want bot", msgs[0].Sender)
	}
	if msgs[0].Text != Greeting {
		t.Errorf("greeting text altered: %q", msgs[0].Text)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	log := NewLog()

	log.Append(types.NewMessage("first", types.SenderUser))
	log.Append(types.NewMessage("second", types.SenderBot))
	log.Append(types.NewMessage("third", types.SenderUser))

	msgs := log.Messages()
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	want := []string{Greeting, "first", "second", "third"}
	for i, text := range want {
		if msgs[i].Text != text {
			t.Errorf("position %d: got %q, want %q", i, msgs[i].Text, text)
		}
	}
}

func TestMessagesReturnsSnapshot(t *testing.T) {
	log := NewLog()

	snap := log.Messages()
	log.Append(types.NewMessage("later", types.SenderUser))

	if len(snap) != 1 {
		t.Errorf("snapshot grew after append: %d", len(snap))
	}
	if log.Len() != 2 {
		t.Errorf("log length = %d, want 2", log.Len())
	}
}

func TestObserverSeesEveryAppend(t *testing.T) {
	log := NewLog()

	var seen []string
	log.SetObserver(func(m types.Message) { seen = append(seen, m.Text) })

	log.Append(types.NewMessage("a", types.SenderUser))
	log.Append(types.NewMessage("b", types.SenderBot))

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("observer saw %v", seen)
	}
}

func TestFind(t *testing.T) {
	log := NewLog()
	msg := types.NewMessage("findable", types.SenderBot)
	log.Append(msg)

	got, ok := log.Find(msg.ID.String())
	if !ok {
		t.Fatal("message not found by id")
	}
	if got.Text != "findable" {
		t.Errorf("found wrong message: %q", got.Text)
	}

	if _, ok := log.Find("not-an-id"); ok {
		t.Error("found a message for a bogus id")
	}
}
