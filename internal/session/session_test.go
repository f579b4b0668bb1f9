package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/token"
	"github.com/coosanta-bit/medi/pkg/httpclient"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newController wires a controller against baseURL. Boot-only tests pass an
// unroutable URL to prove no network call happens.
func newController(t *testing.T, baseURL string) (*Controller, *token.Store) {
	t.Helper()
	store := token.NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	cfg.Timeout = 2 * time.Second
	apiClient := api.New(baseURL, httpclient.New(cfg), store, discardLogger())
	return New(apiClient, store, discardLogger()), store
}

func signAccessToken(t *testing.T, subject string, userType domain.UserType, role domain.Role, expiresAt time.Time) string {
	t.Helper()
	claims := &token.Claims{
		UserType: string(userType),
		Role:     string(role),
		Email:    "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestController_StartsBooting(t *testing.T) {
	c, _ := newController(t, "http://127.0.0.1:1")
	assert.Equal(t, StateBooting, c.Snapshot().State)
	assert.True(t, c.Snapshot().Loading())
}

func TestController_BootEmptyStore(t *testing.T) {
	c, _ := newController(t, "http://127.0.0.1:1")

	c.Boot()

	snap := c.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)
}

func TestController_BootValidToken(t *testing.T) {
	c, store := newController(t, "http://127.0.0.1:1")
	access := signAccessToken(t, "user-1", domain.UserTypePerson, domain.RolePerson, time.Now().Add(time.Hour))
	require.NoError(t, store.Save(access, "refresh-1"))

	c.Boot()

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "user-1", snap.User.ID)
	assert.Equal(t, domain.UserTypePerson, snap.User.Type)
	assert.Equal(t, domain.RolePerson, snap.User.Role)
	assert.Equal(t, "jane@example.com", snap.User.Email)

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, access, pair.AccessToken, "boot never touches a valid token")
}

func TestController_BootExpiredTokenClearsStore(t *testing.T) {
	c, store := newController(t, "http://127.0.0.1:1")
	access := signAccessToken(t, "user-1", domain.UserTypePerson, domain.RolePerson, time.Now().Add(-time.Hour))
	require.NoError(t, store.Save(access, "refresh-1"))

	c.Boot()

	assert.Equal(t, StateAnonymous, c.Snapshot().State)
	pair, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}

func TestController_BootUndecodableTokenClearsStore(t *testing.T) {
	c, store := newController(t, "http://127.0.0.1:1")
	require.NoError(t, store.Save("garbage", "refresh-1"))

	c.Boot()

	assert.Equal(t, StateAnonymous, c.Snapshot().State)
	pair, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, pair.AccessToken)
}

func TestController_LoginEstablishesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body domain.LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.AuthResponse{
			User: domain.AuthUser{
				ID:    "user-1",
				Type:  domain.UserTypePerson,
				Email: "jane@example.com",
				Role:  domain.RolePerson,
			},
			Tokens: domain.TokenPayload{
				AccessToken:  "access-1",
				RefreshToken: "refresh-1",
				TokenType:    "bearer",
			},
		})
	}))
	defer server.Close()

	c, store := newController(t, server.URL)
	c.Boot()

	require.NoError(t, c.Login(context.Background(), "jane@example.com", "s3cret-pw"))

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, "user-1", snap.User.ID)

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "access-1", pair.AccessToken)
	assert.Equal(t, "refresh-1", pair.RefreshToken)
}

func TestController_LoginFailureLeavesSessionUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"wrong email or password"}}`))
	}))
	defer server.Close()

	c, store := newController(t, server.URL)
	c.Boot()

	err := c.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, c.Snapshot().State)
	pair, rerr := store.Read()
	require.NoError(t, rerr)
	assert.Empty(t, pair.AccessToken)
}

func TestController_LogoutClearsEvenWhenBackendFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c, store := newController(t, server.URL)
	access := signAccessToken(t, "user-1", domain.UserTypePerson, domain.RolePerson, time.Now().Add(time.Hour))
	require.NoError(t, store.Save(access, "refresh-1"))
	c.Boot()
	require.Equal(t, StateAuthenticated, c.Snapshot().State)

	c.Logout(context.Background())

	assert.Equal(t, StateAnonymous, c.Snapshot().State)
	pair, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, pair.AccessToken)
}

func TestController_SubscribeObservesTransitions(t *testing.T) {
	c, _ := newController(t, "http://127.0.0.1:1")

	var seen []State
	unsubscribe := c.Subscribe(func(s Snapshot) {
		seen = append(seen, s.State)
	})

	c.Boot()
	require.Equal(t, []State{StateAnonymous}, seen)

	unsubscribe()
	c.Boot()
	assert.Equal(t, []State{StateAnonymous}, seen, "no notifications after unsubscribe")
}

func TestController_Current(t *testing.T) {
	c, store := newController(t, "http://127.0.0.1:1")

	_, ok := c.Current()
	assert.False(t, ok)

	access := signAccessToken(t, "user-1", domain.UserTypeCompany, domain.RoleCompanyVerified, time.Now().Add(time.Hour))
	require.NoError(t, store.Save(access, "refresh-1"))
	c.Boot()

	user, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, domain.RoleCompanyVerified, user.Role)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "booting", StateBooting.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
