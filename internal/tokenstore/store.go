// Package tokenstore persists the authentication session on disk. The
// session file is sealed at rest with a locally generated key; both live
// under the user's config dir with owner-only permissions.
package tokenstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vibestage/vibestage-client/internal/errs"
)

// Session is the minimal identity kept between runs.
type Session struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// ExpiresAt reports the access token expiry when the token is a JWT carrying
// an exp claim. The signature is not verified; only the server can do that.
// Opaque tokens report ok=false and never expire locally.
func (s Session) ExpiresAt() (time.Time, bool) {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// DefaultDir returns the per-user config dir for the session files.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "vibestage")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vibestage")
}

// Store reads and writes the sealed session file. Concurrent writers are
// last-writer-wins; each write replaces the whole file atomically via rename.
type Store struct {
	dir string
}

// New returns a Store rooted at dir; empty dir means DefaultDir.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

func (s *Store) keyPath() string     { return filepath.Join(s.dir, "store.key") }
func (s *Store) sessionPath() string { return filepath.Join(s.dir, "session.bin") }

// loadKey returns the sealing key, generating it on first use.
func (s *Store) loadKey() ([]byte, error) {
	b, err := os.ReadFile(s.keyPath())
	if err == nil && len(b) == KeyLen {
		return b, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	key, err := NewKey()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.keyPath(), key, 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// Save seals and writes the session. An empty access token is rejected so an
// unauthenticated state can never masquerade as a session.
func (s *Store) Save(sess Session) error {
	if sess.AccessToken == "" {
		return errors.New("refusing to save session with empty token")
	}
	key, err := s.loadKey()
	if err != nil {
		return err
	}
	plain, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	blob, err := Seal(key, plain)
	if err != nil {
		return err
	}
	tmp := s.sessionPath() + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.sessionPath())
}

// Load returns the stored session. errs.ErrNoSession when none is stored,
// errs.ErrSessionExpired when the token carries an exp claim in the past.
func (s *Store) Load() (Session, error) {
	blob, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, errs.ErrNoSession
		}
		return Session{}, err
	}
	key, err := os.ReadFile(s.keyPath())
	if err != nil {
		return Session{}, errs.ErrNoSession
	}
	plain, err := Open(key, blob)
	if err != nil {
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(plain, &sess); err != nil {
		return Session{}, err
	}
	if sess.AccessToken == "" {
		return Session{}, errs.ErrNoSession
	}
	if exp, ok := sess.ExpiresAt(); ok && time.Now().After(exp) {
		return Session{}, errs.ErrSessionExpired
	}
	return sess, nil
}

// Clear removes the session and its sealing key. Missing files are fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.sessionPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.Remove(s.keyPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Token implements the request layer's token source: the bearer value and
// whether one is usable. Expired or unreadable sessions count as absent.
func (s *Store) Token() (string, bool) {
	sess, err := s.Load()
	if err != nil {
		return "", false
	}
	return sess.AccessToken, true
}
