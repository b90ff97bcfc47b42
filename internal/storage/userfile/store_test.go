package userfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/krishisahayak/app-backend/internal/types"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, path
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s, _ := tempStore(t)

	user := types.User{Name: "Ravi", Email: "ravi@example.com", Password: "secret"}
	if err := s.Register(user); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := s.Authenticate("ravi@example.com", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.Name != "Ravi" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := s.Authenticate("ravi@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := tempStore(t)

	user := types.User{Name: "Ravi", Email: "ravi@example.com", Password: "secret"}
	if err := s.Register(user); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	dup := types.User{Name: "Other", Email: "RAVI@example.com", Password: "x"}
	if err := s.Register(dup); !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("duplicate registered: %d users", s.Count())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	s, _ := tempStore(t)

	bad := []types.User{
		{Email: "a@b.c", Password: "x"},
		{Name: "A", Password: "x"},
		{Name: "A", Email: "a@b.c"},
	}
	for _, u := range bad {
		if err := s.Register(u); !errors.Is(err, ErrMissingField) {
			t.Errorf("user %+v: expected ErrMissingField, got %v", u, err)
		}
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	s, path := tempStore(t)

	if err := s.Register(types.User{Name: "Ravi", Email: "ravi@example.com", Password: "secret"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.Count() != 1 {
		t.Fatalf("registry lost on reopen: %d users", reopened.Count())
	}
	if _, err := reopened.Authenticate("ravi@example.com", "secret"); err != nil {
		t.Errorf("Authenticate after reopen failed: %v", err)
	}
}
