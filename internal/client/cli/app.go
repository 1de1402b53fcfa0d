package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/config"
	"tripdeck/internal/client/services"
	"tripdeck/internal/client/session"
	"tripdeck/internal/common"
	"tripdeck/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known backend reachability.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	auth         services.AuthService
	trips        services.TripService
	activities   services.ActivityService
	destinations services.DestinationService
	health       services.HealthService
	userName     string
	reader       *bufio.Reader

	// mode is written by the status watcher goroutine and read from the
	// REPL loop, hence the mutex.
	modeMu sync.Mutex
	mode   Mode
}

// NewApp wires the client: it opens (creating if needed) the local session
// database, builds the REST transport with the session store as its token
// source, and constructs the resource services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dsn, err := databasePath(c)
	if err != nil {
		return nil, err
	}

	db, err := session.InitDatabase(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(db)
	apiClient := api.NewClient(c.APIBaseURL, store, log)

	return &App{
		config:       c,
		log:          log,
		db:           db,
		auth:         services.NewAuthService(apiClient, store, log),
		trips:        services.NewTripService(apiClient, log),
		activities:   services.NewActivityService(apiClient, log),
		destinations: services.NewDestinationService(apiClient, log),
		health:       services.NewHealthService(apiClient, c.HealthPath),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// databasePath resolves the sqlite location: the configured path wins,
// otherwise a per-user default under os.UserConfigDir.
func databasePath(c *config.Config) (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "tripdeck")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(dir, "client.db"), nil
}

// reportError prints a command failure; unauthorized replies get a re-login
// hint instead of the raw message.
func (a *App) reportError(err error) {
	if errors.Is(err, common.ErrorUnauthorized) {
		printlnFn("Not authorized (session may have expired), please 'login' again")
		return
	}
	printlnFn(fmt.Sprintf("Error: %s", err.Error()))
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if mode := a.currentMode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// restoreSession adopts a session persisted by an earlier run, so a restart
// does not force a fresh login.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.auth.Current(ctx)
	if err != nil || sess == nil {
		return
	}
	a.userName = sess.User.Username
	if exp, ok := services.TokenExpiry(sess.Token); ok && exp.Before(time.Now()) {
		printlnFn("Stored session has expired, please login again")
		return
	}
	printlnFn(fmt.Sprintf("Welcome back, %s", a.userName))
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("TripDeck CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	if err := a.health.Ping(ctx); err == nil {
		a.setMode(ModeOnline)
	} else {
		a.setMode(ModeOffline)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher periodically probes the backend and flips Mode
// between online and offline. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.health.Ping(probeCtx)
			cancel()

			if err != nil {
				if a.currentMode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.currentMode() != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
