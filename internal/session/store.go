package session

import (
	"sync"
)

const (
	defaultUsername = "some_name"
	defaultEmail    = "some_name@mail.com"
)

// User carries the identity fields returned by a successful login.
type User struct {
	Username string
	Email    string
	IsAdmin  bool
}

// State is a point-in-time copy of the store. Token/username/email are
// empty strings when unset; the machine connection is either fully unset
// or has both MachineName and URLFor404API populated.
type State struct {
	Token    string
	Username string
	Email    string
	IsAdmin  bool

	MachineName             string
	URLFor404API            string
	NginxStoragePathOptions []string

	Version uint64
}

// LoggedIn reports whether a login token is held.
func (s State) LoggedIn() bool {
	return s.Token != ""
}

// MachineConnected reports whether an active machine context is set.
func (s State) MachineConnected() bool {
	return s.MachineName != "" && s.URLFor404API != ""
}

// Store holds the session and active machine context for one dashboard
// process. It is constructed empty at startup and passed to every
// component that reads or dispatches; there is no package-level instance.
// All transitions are total and synchronous.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state. The path options slice is
// copied so callers can never mutate the store through it.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	if len(s.state.NginxStoragePathOptions) > 0 {
		out.NginxStoragePathOptions = append([]string(nil), s.state.NginxStoragePathOptions...)
	}
	return out
}

// Token returns the held login token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Version returns the number of transitions applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Version
}

// LoginUser stores the token and identity from a successful login.
// Missing username/email fall back to placeholder defaults; the token
// format is not validated here.
func (s *Store) LoginUser(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = token
	s.state.Username = user.Username
	if s.state.Username == "" {
		s.state.Username = defaultUsername
	}
	s.state.Email = user.Email
	if s.state.Email == "" {
		s.state.Email = defaultEmail
	}
	s.state.IsAdmin = user.IsAdmin
	s.state.Version++
}

// LogoutUser clears the identity fields only. The machine connection and
// the admin flag survive, so a re-login keeps the active machine context.
// Use LogoutUserFully for the canonical full logout.
func (s *Store) LogoutUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = ""
	s.state.Username = ""
	s.state.Email = ""
	s.state.Version++
}

// LogoutUserFully clears every field. This is the one transition that
// guarantees a fully disconnected state regardless of prior history.
func (s *Store) LogoutUserFully() {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.state.Version
	s.state = State{Version: v + 1}
}

// ConnectMachine overwrites the single active machine context. A second
// call replaces the first; there are no multi-machine sessions.
func (s *Store) ConnectMachine(machineName, urlFor404API string, nginxStoragePathOptions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.MachineName = machineName
	s.state.URLFor404API = urlFor404API
	s.state.NginxStoragePathOptions = append([]string(nil), nginxStoragePathOptions...)
	s.state.Version++
}

// DisconnectMachine clears the machine fields only.
func (s *Store) DisconnectMachine() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.MachineName = ""
	s.state.URLFor404API = ""
	s.state.NginxStoragePathOptions = nil
	s.state.Version++
}
