// Package cli is the terminal front end of the savings client. It wires the
// local stores, the request gateway, and the services together and exposes
// them through a small REPL.
package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/cjsavings/savings-client/internal/api"
	"github.com/cjsavings/savings-client/internal/config"
	"github.com/cjsavings/savings-client/internal/identity"
	"github.com/cjsavings/savings-client/internal/kvstore"
	"github.com/cjsavings/savings-client/internal/logging"
	"github.com/cjsavings/savings-client/internal/models"
	"github.com/cjsavings/savings-client/internal/services"
	"github.com/cjsavings/savings-client/internal/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *kvstore.SQLiteRepository
	auth    services.AuthService
	savings services.SavingsService

	reader *bufio.Reader
	out    io.Writer

	// last known session view; refreshed by login/whoami/logout
	customer *models.Customer
	state    services.SessionState
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := kvstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	secret, salt, err := kvstore.LoadOrCreateKeyMaterial(cfg.KeyPath)
	if err != nil {
		store.Close()
		return nil, err
	}
	secure := kvstore.NewSecure(store, secret, salt)

	devices := identity.NewProvider(store)
	sessions := session.NewStore(secure)

	baseURL := api.ResolveBaseURL(cfg.APIBaseURL, cfg.DevServerHost)
	gateway := api.New(baseURL, &http.Client{Timeout: cfg.RequestTimeout}, sessions, devices, log)

	return &App{
		config:  cfg,
		log:     log,
		store:   store,
		auth:    services.NewAuthService(gateway, sessions, devices, log),
		savings: services.NewSavingsService(gateway, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		state:   services.StateUnknown,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.state == services.StateActive
}
