package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/astroerik-coder/agrostock/internal/client/config"
	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/inventory"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/kv"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/users"
	"github.com/astroerik-coder/agrostock/internal/client/services"
	"github.com/astroerik-coder/agrostock/internal/client/storage"
	"github.com/astroerik-coder/agrostock/internal/common"
	"github.com/astroerik-coder/agrostock/internal/cryptox"
	"github.com/astroerik-coder/agrostock/internal/logging"
)

type App struct {
	config           *config.Config
	store            kv.Store
	authService      services.AuthService
	inventoryService services.InventoryService
	log              logging.Logger
	session          *models.Session
	reader           *bufio.Reader
	out              io.Writer
}

// NewApp opens the configured store and builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	scheme, err := cryptox.ParseScheme(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	openCtx, cancel := context.WithTimeout(ctx, c.OperationTimeout)
	defer cancel()

	store, err := storage.Open(openCtx, c)
	if err != nil {
		return nil, fmt.Errorf("error opening %s storage: %w", c.Backend, err)
	}
	log.Info(ctx, "storage opened", "backend", c.Backend)

	return &App{
		config:           c,
		store:            store,
		authService:      services.NewAuthService(users.NewKVRepository(store), scheme, log),
		inventoryService: services.NewInventoryService(inventory.NewKVRepository(store), log),
		log:              log,
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}, nil
}

// Run restores the persisted session and blocks in the REPL until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)
	fmt.Fprintln(a.out, "agrostock: inventario agrícola (escribe 'help' para ver los comandos)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Sesión restaurada: %s <%s>\n", a.session.Name, a.session.Email)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing storage", "error", err)
	}
}

func (a *App) restoreSession(ctx context.Context) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.CurrentSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
		return
	}
	a.session = s
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Name)
}

// withTimeout bounds a single storage-facing operation; prompts run outside it.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}

// describeError renders err for the user. Validation, conflict and auth
// failures carry a ready-made message; storage failures keep the cause.
func describeError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Error: la operación tardó demasiado"
	case errors.Is(err, common.ErrStorage):
		return "Error de almacenamiento: " + err.Error()
	}
	return "Error: " + err.Error()
}
