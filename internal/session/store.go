package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// HydrationState tracks the one-time startup restore from durable storage.
type HydrationState uint8

const (
	// HydrationPending means Hydrate has not run yet.
	HydrationPending HydrationState = iota
	// HydrationReady means the persisted session check is complete.
	HydrationReady
)

// Credentials is what the remote authenticator returns on a successful login.
type Credentials struct {
	Token    string
	Identity Identity
}

// Registration carries the sign-up form. Trainee accounts may include
// physical metrics and a goal; trainer accounts a CREF number and specialty.
type Registration struct {
	Name      string
	Email     string
	Password  string
	City      string
	WeightKG  float64
	HeightCM  float64
	Goal      string
	CREF      string
	Specialty string
}

// Authenticator is the remote collaborator behind Login and Register.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (Credentials, error)
	SignUp(ctx context.Context, role Role, reg Registration) error
}

// Result is the non-throwing outcome of Login and Register. Message is only
// meaningful when OK is false.
type Result struct {
	OK      bool
	Message string
}

// userMessage is implemented by errors that carry a human-readable message
// from the backend. The store surfaces it instead of the generic fallback.
type userMessage interface {
	UserMessage() string
}

const (
	loginFallback    = "could not log in, check your credentials and connection"
	registerFallback = "could not complete registration"
)

// Store is the single source of truth for who is logged in. Token and
// identity are always set and cleared together; all access is serialized by
// the mutex. Remote failures never escape as errors: Login and Register
// normalize them into a Result.
type Store struct {
	mu      sync.Mutex
	storage Storage
	auth    Authenticator
	logger  *slog.Logger

	state    HydrationState
	token    string
	identity *Identity
}

// NewStore creates an empty, not-yet-hydrated session store.
func NewStore(storage Storage, auth Authenticator, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{storage: storage, auth: auth, logger: logger}
}

// Hydrate restores the session from durable storage. It runs at most once:
// later calls are no-ops. Missing or malformed persisted data yields a
// logged-out session, never an error, so startup cannot fail here.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == HydrationReady {
		return
	}
	s.state = HydrationReady

	token, tokenOK, err := s.storage.Get(KeyToken)
	if err != nil {
		s.logger.Warn("reading persisted token", "error", err)
		return
	}
	rawIdentity, identityOK, err := s.storage.Get(KeyIdentity)
	if err != nil {
		s.logger.Warn("reading persisted identity", "error", err)
		return
	}
	if !tokenOK || !identityOK || token == "" {
		return
	}

	identity, err := decodeIdentity(rawIdentity)
	if err != nil {
		s.logger.Warn("persisted identity unusable, starting logged out", "error", err)
		return
	}

	s.token = token
	s.identity = identity
	s.logger.Debug("session restored", "user", identity.Email, "role", identity.Role)
}

// Login authenticates against the backend and, on success, persists and
// adopts the returned credentials. On failure the session is left untouched
// and the Result carries the backend's message when it sent one.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	creds, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Debug("login rejected", "error", err)
		return Result{OK: false, Message: messageFrom(err, loginFallback)}
	}

	creds.Identity.Role = ParseRole(string(creds.Identity.Role))

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := encodeIdentity(creds.Identity)
	if err != nil {
		return Result{OK: false, Message: loginFallback}
	}
	if err := s.storage.Set(KeyToken, creds.Token); err != nil {
		s.logger.Warn("persisting token", "error", err)
	}
	if err := s.storage.Set(KeyIdentity, raw); err != nil {
		s.logger.Warn("persisting identity", "error", err)
	}

	s.token = creds.Token
	identity := creds.Identity
	s.identity = &identity
	return Result{OK: true}
}

// Register delegates to the remote registration endpoint. It never mutates
// the session: a new account still has to log in.
func (s *Store) Register(ctx context.Context, role Role, reg Registration) Result {
	if err := s.auth.SignUp(ctx, role, reg); err != nil {
		s.logger.Debug("registration rejected", "role", role, "error", err)
		return Result{OK: false, Message: messageFrom(err, registerFallback)}
	}
	return Result{OK: true}
}

// Logout clears the persisted credentials and the in-memory session. Calling
// it while logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// ForceLogout is the session-expiry path, wired as the API client's
// unauthorized hook: any backend call answered with a 401 lands here before
// the command returns.
func (s *Store) ForceLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity != nil {
		s.logger.Info("session expired, logging out")
	}
	s.clearLocked()
}

func (s *Store) clearLocked() {
	if err := s.storage.Remove(KeyToken); err != nil {
		s.logger.Warn("removing persisted token", "error", err)
	}
	if err := s.storage.Remove(KeyIdentity); err != nil {
		s.logger.Warn("removing persisted identity", "error", err)
	}
	s.token = ""
	s.identity = nil
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// HasRole reports whether the session holds the given role.
func (s *Store) HasRole(role Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && s.identity.Role == role
}

// State returns the hydration state.
func (s *Store) State() HydrationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns a copy of the current identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Token returns the current bearer credential, or "" when logged out. It
// satisfies the API client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func messageFrom(err error, fallback string) string {
	var um userMessage
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return fallback
}
