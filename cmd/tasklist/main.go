package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/notify"
	"github.com/sandeepkv93/tasklist/internal/scheduler"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
	"github.com/sandeepkv93/tasklist/internal/update"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tasklist: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	envErr := godotenv.Load()

	cfg, err := update.RuntimeConfigFromFile(update.ConfigPathFromEnv(), update.DefaultRuntimeConfig())
	if err != nil {
		return err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, len(args) == 0)
	if err != nil {
		return err
	}
	defer closeLog()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logging.Info("config", "load .env: %v", envErr)
	}

	kv, err := storage.Open(cfg.StorageBackend, cfg.DatabasePath, cfg.StateFilePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	ctx := context.Background()
	st, err := store.Open(ctx, storage.NewTaskSlot(kv, cfg.StorageKey))
	if err != nil {
		return err
	}
	logging.Debug("main", "loaded %d tasks from %s backend", st.Len(), cfg.StorageBackend)

	if len(args) > 0 {
		cmd, err := commands.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return update.RunCommand(ctx, st, cmd, os.Stdout)
	}
	return runTUI(ctx, cfg, st)
}

func runTUI(ctx context.Context, cfg update.RuntimeConfig, st *store.Store) error {
	engine := scheduler.NewEngine(cfg.TimerBuffer)
	engine.Start()
	defer func() {
		engine.Stop()
		if n := engine.Dropped(); n > 0 {
			logging.Info("main", "%d timer events undelivered at shutdown", n)
		}
	}()

	opts := []notify.Option{notify.WithDurations(cfg.NotificationDisplay(), cfg.NotificationExit())}
	if cfg.DesktopNotifications {
		opts = append(opts, notify.WithDesktop(notify.ExecDesktopNotifier{}))
	}
	notices := notify.NewService(engine, opts...)

	m := update.NewModel(update.Deps{
		Context: ctx,
		Store:   st,
		Notices: notices,
		Timers:  engine,
		Events:  engine.C(),
	}, cfg)

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging points the logger at the configured file. Without one, the
// TUI discards log lines since it owns the terminal; one-shot commands log
// to stderr only in debug mode.
func setupLogging(cfg update.RuntimeConfig, interactive bool) (func(), error) {
	if cfg.Debug {
		logging.SetDebug(true)
	}
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tasklist")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return func() { _ = f.Close() }, nil
	}
	if interactive || !logging.DebugEnabled() {
		logging.SetOutput(io.Discard)
	}
	return func() {}, nil
}
