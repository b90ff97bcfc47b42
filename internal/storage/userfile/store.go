// Package userfile keeps registered accounts as a JSON list in a single
// local file. It mocks a user database for the login/register screens;
// passwords are stored as-is because nothing real is protected by them.
package userfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/krishisahayak/app-backend/internal/types"
)

var (
	// ErrUserExists means the email is already registered.
	ErrUserExists = errors.New("userfile: email already registered")
	// ErrInvalidCredentials means no account matches the email/password pair.
	ErrInvalidCredentials = errors.New("userfile: invalid email or password")
	// ErrMissingField means a mandatory registration field was blank.
	ErrMissingField = errors.New("userfile: name, email and password are all mandatory")
)

// Store is the on-disk user registry.
type Store struct {
	path string

	mu    sync.Mutex
	users []types.User
}

// Open loads the registry from path, creating an empty one if the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return s, nil
}

// Register validates and appends a new account, then persists the list.
func (s *Store) Register(user types.User) error {
	if strings.TrimSpace(user.Name) == "" ||
		strings.TrimSpace(user.Email) == "" ||
		user.Password == "" {
		return ErrMissingField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrUserExists
		}
	}

	s.users = append(s.users, user)
	return s.save()
}

// Authenticate returns the account matching the email/password pair.
func (s *Store) Authenticate(email, password string) (*types.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Count reports how many accounts are registered.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// save writes the registry back to disk. Callers hold the lock.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
