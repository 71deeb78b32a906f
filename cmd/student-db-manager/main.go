// main is the entry point of the Student Database Manager.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Open the connection pool for the configured driver
//  4. Build the window, the dispatcher and the controller
//  5. Run the Fyne event loop until the window is closed
//  6. Close the pool
//
// RUNNING:
//
//	go run ./cmd/student-db-manager --config=config/local.yaml
//
// or, against MySQL with credentials from the environment:
//
//	DB_USER=app DB_PASSWORD=secret go run ./cmd/student-db-manager --config=config/mysql.yaml
package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aanand-mishra/student-db-manager/internal/config"
	"github.com/aanand-mishra/student-db-manager/internal/controller"
	"github.com/aanand-mishra/student-db-manager/internal/dispatch"
	"github.com/aanand-mishra/student-db-manager/internal/gui"
	"github.com/aanand-mishra/student-db-manager/internal/logger"
	"github.com/aanand-mishra/student-db-manager/internal/storage/mysql"
	"github.com/aanand-mishra/student-db-manager/internal/storage/sqlite"
	"github.com/aanand-mishra/student-db-manager/internal/storage/sqlstore"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "student-db-manager",
		Short:        "Add, list and search student records",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration YAML file (or CONFIG_PATH)")

	return cmd
}

func run(configPath string) error {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// The struct is built once here and passed down; nothing below reads
	// the environment again.
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := logger.New(cfg.Env)
	log.Info().
		Str("env", cfg.Env).
		Str("version", version).
		Msg("starting student-db-manager")

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := openStorage(cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialise storage")
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("closing storage")
		}
	}()

	// ── 4. Build the Window ───────────────────────────────────────────────
	// ctx lives as long as the window. It is the only cancellation the
	// background tasks ever see.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID(gui.AppID)
	window := fyneApp.NewWindow(gui.AppTitle)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	view := gui.New(window, log)
	// fyne.Do queues the completion onto the UI goroutine.
	dispatcher := dispatch.New(ctx, fyne.Do)
	view.Bind(controller.New(store, view, dispatcher, log))

	window.SetContent(view.Content())

	// ── 5. Run ────────────────────────────────────────────────────────────
	// ShowAndRun blocks until the last window closes.
	window.ShowAndRun()

	log.Info().Msg("window closed, shutting down")
	return nil
}

// openStorage picks the backend named in the config.
func openStorage(cfg config.Database, log zerolog.Logger) (*sqlstore.Store, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		store, err := mysql.New(cfg)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("driver", cfg.Driver).
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Str("database", cfg.Name).
			Int("max_open_conns", cfg.MaxOpenConns).
			Msg("storage initialised")
		return store, nil

	case config.DriverSQLite:
		store, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("driver", cfg.Driver).
			Str("path", cfg.Path).
			Msg("storage initialised")
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
