package session

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Persisted keys. The admin flag is denormalized from the user record at
// login time and is advisory only; the server is the enforcement point.
const (
	keyToken         = "token"
	keyUser          = "user"
	keyAuthenticated = "is_authenticated"
	keyAdmin         = "is_admin"
	keyReturnTo      = "return_to"
)

// Store is the persistent session state: the bearer token, the serialized
// user record, denormalized auth flags, and a one-shot post-login return
// target. It is constructed once in main and handed to the UI; login,
// register and logout are its only writers.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Store) Token() (string, error) {
	return s.get(keyToken)
}

// IsAuthenticated reports whether a session was persisted at login time.
// A stale token still reads as authenticated here; requests made with it
// fail through the uniform error path instead.
func (s *Store) IsAuthenticated() bool {
	v, err := s.get(keyAuthenticated)
	return err == nil && v == "true"
}

// IsAdmin reports the denormalized admin flag.
func (s *Store) IsAdmin() bool {
	v, err := s.get(keyAdmin)
	return err == nil && v == "true"
}

// User returns the persisted user record, or nil when none is stored.
func (s *Store) User() (*model.UserRef, error) {
	raw, err := s.get(keyUser)
	if err != nil || raw == "" {
		return nil, err
	}
	var user model.UserRef
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	return &user, nil
}

// SetSession persists the full session written at login/registration time.
func (s *Store) SetSession(user model.UserRef, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := s.set(keyToken, token); err != nil {
		return err
	}
	if err := s.set(keyUser, string(raw)); err != nil {
		return err
	}
	if err := s.set(keyAuthenticated, "true"); err != nil {
		return err
	}
	admin := "false"
	if user.IsAdmin {
		admin = "true"
	}
	return s.set(keyAdmin, admin)
}

// Clear removes every persisted session key. Logout calls this; the server
// round-trip is best effort.
func (s *Store) Clear() error {
	for _, key := range []string{keyToken, keyUser, keyAuthenticated, keyAdmin, keyReturnTo} {
		if err := s.delete(key); err != nil {
			return err
		}
	}
	return nil
}

// SetReturnTo records where to land after the next successful login.
func (s *Store) SetReturnTo(target string) error {
	return s.set(keyReturnTo, target)
}

// TakeReturnTo reads and consumes the one-shot return target.
func (s *Store) TakeReturnTo() (string, error) {
	target, err := s.get(keyReturnTo)
	if err != nil {
		return "", err
	}
	if target == "" {
		return "", nil
	}
	if err := s.delete(keyReturnTo); err != nil {
		return "", err
	}
	return target, nil
}
