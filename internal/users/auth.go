package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/virtkbd/internal/logging"
)

// Authentication errors.
var (
	// ErrUnknownLogin indicates no user holds the given login.
	ErrUnknownLogin = errors.New("unknown login")

	// ErrWrongPassword indicates the password did not match.
	ErrWrongPassword = errors.New("wrong password")
)

// Session is the persisted form of an authorized sign-in.
type Session struct {
	UserID    int       `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService tracks the signed-in user and persists the session so a
// restart restores authorization. Session load and save fail soft: a
// missing, corrupt, or unwritable session file is reported through the
// log pipeline and never aborts the service.
type AuthService struct {
	path    string
	repo    Repository
	log     *logging.Logger
	current *User
	token   string
}

// NewAuthService creates a service over the repository, restoring any
// persisted session whose user still exists. The logger may be nil.
func NewAuthService(sessionPath string, repo Repository, log *logging.Logger) *AuthService {
	a := &AuthService{path: sessionPath, repo: repo, log: log}
	a.loadSession()
	return a
}

// SignIn authorizes a user by login and password and persists the
// session with a fresh token.
func (a *AuthService) SignIn(login, password string) error {
	u, err := a.repo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownLogin, login)
		}
		return fmt.Errorf("looking up %s: %w", login, err)
	}
	if u.Password != password {
		return ErrWrongPassword
	}

	a.current = u
	a.token = uuid.NewString()
	a.saveSession()
	return nil
}

// SignOut clears the current user and removes the persisted session.
func (a *AuthService) SignOut() {
	a.current = nil
	a.token = ""
	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		a.logf("error: removing session: %v", err)
	}
}

// Authorized reports whether a user is signed in.
func (a *AuthService) Authorized() bool { return a.current != nil }

// CurrentUser returns the signed-in user, or nil.
func (a *AuthService) CurrentUser() *User {
	if a.current == nil {
		return nil
	}
	u := *a.current
	return &u
}

// Token returns the current session token, empty when signed out.
func (a *AuthService) Token() string { return a.token }

func (a *AuthService) loadSession() {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.logf("error: reading session: %v", err)
		}
		return
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		a.logf("error: parsing session %s: %v", a.path, err)
		return
	}

	u, err := a.repo.GetByID(s.UserID)
	if err != nil {
		a.logf("error: session user %d: %v", s.UserID, err)
		return
	}
	a.current = u
	a.token = s.Token
}

func (a *AuthService) saveSession() {
	s := Session{UserID: a.current.ID, Token: a.token, CreatedAt: time.Now()}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		a.logf("error: marshaling session: %v", err)
		return
	}
	if err := os.WriteFile(a.path, data, 0600); err != nil {
		a.logf("error: writing session: %v", err)
	}
}

func (a *AuthService) logf(format string, args ...any) {
	if a.log != nil {
		a.log.Logf(format, args...)
	}
}
