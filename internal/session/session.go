// Package session owns the single source of truth for "who is logged in".
// The controller is an observable store: any component can read the current
// snapshot synchronously and subscribe to transitions.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/token"
)

// State is the controller's lifecycle state. The controller always leaves
// Booting after the single synchronous decode attempt in Boot; it never
// hangs there.
type State int

const (
	StateBooting State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBooting:
		return "booting"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session published to subscribers.
type Snapshot struct {
	State State
	User  *domain.AuthUser
}

// Loading reports whether the session has not resolved yet.
func (s Snapshot) Loading() bool {
	return s.State == StateBooting
}

// Controller derives and publishes the current session. It is the only
// component besides the API client's refresh step that touches the token
// store.
type Controller struct {
	api    *api.Client
	store  *token.Store
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	state   State
	user    *domain.AuthUser
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates a controller in the Booting state. Call Boot before serving
// commands.
func New(apiClient *api.Client, store *token.Store, logger *slog.Logger) *Controller {
	return &Controller{
		api:    apiClient,
		store:  store,
		logger: logger,
		now:    time.Now,
		state:  StateBooting,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Boot resolves the initial session from the token store without any network
// call. A missing token means Anonymous; an undecodable or expired token
// clears the store and means Anonymous; otherwise a minimal session is
// rebuilt from the decoded claims. Decode failures are never fatal.
func (c *Controller) Boot() {
	pair, err := c.store.Read()
	if err != nil || pair.AccessToken == "" {
		c.transition(StateAnonymous, nil)
		return
	}

	claims, err := token.DecodeClaims(pair.AccessToken)
	if err != nil {
		c.logger.Debug("stored access token undecodable, clearing", slog.String("error", err.Error()))
		_ = c.store.Clear()
		c.transition(StateAnonymous, nil)
		return
	}
	if claims.Expired(c.now()) {
		c.logger.Debug("stored access token expired, clearing")
		_ = c.store.Clear()
		c.transition(StateAnonymous, nil)
		return
	}

	user := &domain.AuthUser{
		ID:    claims.UserID(),
		Type:  domain.UserType(claims.UserType),
		Email: claims.Email,
		Role:  domain.Role(claims.Role),
	}
	c.transition(StateAuthenticated, user)
}

// Current returns the authenticated user, if any.
func (c *Controller) Current() (*domain.AuthUser, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user, c.state == StateAuthenticated
}

// Snapshot returns the current session view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, User: c.user}
}

// Subscribe registers fn to be called on every session transition. The
// returned function unsubscribes; calling it more than once is harmless.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Login authenticates with the backend. On success the returned token pair is
// persisted and the session becomes Authenticated with the returned user. On
// failure the error propagates untouched and the session stays as it was.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	var res domain.AuthResponse
	err := c.api.Post(ctx, "/auth/login", domain.LoginInput{Email: email, Password: password}, &res)
	if err != nil {
		return err
	}
	return c.establish(res)
}

// Signup registers a new account. Field-level validation of role-specific
// fields happens in the calling form; the controller passes input through
// opaquely.
func (c *Controller) Signup(ctx context.Context, input domain.SignupInput) error {
	var res domain.AuthResponse
	err := c.api.Post(ctx, "/auth/signup", input, &res)
	if err != nil {
		return err
	}
	return c.establish(res)
}

// Logout tells the backend best-effort, then unconditionally clears the
// token store and transitions to Anonymous. It never fails from the caller's
// perspective.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		c.logger.DebugContext(ctx, "logout call failed", slog.String("error", err.Error()))
	}
	if err := c.store.Clear(); err != nil {
		c.logger.DebugContext(ctx, "token clear failed", slog.String("error", err.Error()))
	}
	c.transition(StateAnonymous, nil)
}

func (c *Controller) establish(res domain.AuthResponse) error {
	if err := c.store.Save(res.Tokens.AccessToken, res.Tokens.RefreshToken); err != nil {
		return err
	}
	user := res.User
	c.transition(StateAuthenticated, &user)
	return nil
}

// transition swaps the state and notifies subscribers outside the lock.
func (c *Controller) transition(state State, user *domain.AuthUser) {
	c.mu.Lock()
	c.state = state
	c.user = user
	snap := Snapshot{State: state, User: user}
	fns := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
