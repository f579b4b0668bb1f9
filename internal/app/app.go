// Package app wires the client's dependency graph: configuration, logging,
// token storage, transport, the core API client, the session controller, and
// the per-section clients.
package app

import (
	"fmt"
	"log/slog"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/client"
	"github.com/coosanta-bit/medi/internal/config"
	"github.com/coosanta-bit/medi/internal/session"
	"github.com/coosanta-bit/medi/internal/token"
	"github.com/coosanta-bit/medi/pkg/httpclient"
	"github.com/coosanta-bit/medi/pkg/logger"
)

// App bundles everything a command needs.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *token.Store
	API     *api.Client
	Session *session.Controller
	Clients *client.Set
}

// New loads configuration, builds the dependency graph, and resolves the
// initial session. The session is guaranteed to be out of Booting when New
// returns.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("medi", cfg.LogLevel, cfg.LogFormat)
	store := token.NewStore(cfg.TokenFile)

	tcfg := httpclient.DefaultConfig()
	tcfg.Timeout = cfg.HTTPTimeout
	tcfg.MaxRetries = cfg.HTTPMaxRetries

	var doer httpclient.Doer = httpclient.New(tcfg)
	if cfg.BreakerEnabled {
		doer = httpclient.NewBreaker(doer, httpclient.DefaultBreakerConfig("medi-api"), log)
	}

	apiClient := api.New(cfg.APIBaseURL, doer, store, log)

	sess := session.New(apiClient, store, log)
	sess.Boot()

	return &App{
		Config:  cfg,
		Logger:  log,
		Store:   store,
		API:     apiClient,
		Session: sess,
		Clients: client.NewSet(apiClient),
	}, nil
}
