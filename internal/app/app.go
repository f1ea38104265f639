package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"research-agent/client/internal/api"
	"research-agent/client/internal/config"
	"research-agent/client/internal/localstate"
	"research-agent/client/internal/model"
	"research-agent/client/internal/store"
)

// App owns the whole client state layer: one API client, one durable state
// store and the six state stores, wired together. Stores are explicit
// context objects rather than globals so their lifecycle stays visible and
// testable.
type App struct {
	Config *config.Config
	Client *api.Client
	State  *localstate.Store

	Session       *store.SessionStore
	Settings      *store.SettingsStore
	Projects      *store.ProjectStore
	Papers        *store.PaperStore
	Verifications *store.VerificationStore
	Conversations *store.ConversationStore
}

func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this
		// critical error.
		slog.Error("Failed to load configuration", "error", err)
		return nil, err
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	db, err := localstate.InitDB(cfg.StatePath)
	if err != nil {
		slog.Error("Failed to initialize local state database", "error", err)
		return nil, err
	}
	state := localstate.NewStore(db)

	client, err := api.NewClient(cfg.APIBaseURL, time.Duration(cfg.RequestTimeout)*time.Second)
	if err != nil {
		slog.Error("Failed to create API client", "error", err)
		if closeErr := state.Close(); closeErr != nil {
			slog.Error("Failed to close state database", "error", closeErr)
		}
		return nil, err
	}

	a := &App{
		Config:        cfg,
		Client:        client,
		State:         state,
		Session:       store.NewSessionStore(client),
		Settings:      store.NewSettingsStore(),
		Verifications: store.NewVerificationStore(client),
	}
	a.Projects = store.NewProjectStore(client, state)
	a.Papers = store.NewPaperStore(client, a.Projects)
	a.Conversations = store.NewConversationStore(client, a.Projects, a.Verifications)

	a.wireObservers()
	return a, nil
}

// wireObservers connects the stores: a project switch clears and reloads
// the scoped conversation and paper lists, and a logout resets everything.
func (a *App) wireObservers() {
	a.Projects.OnSelect(func(ctx context.Context, project *model.Project) {
		// Stale scoped state is cleared before any reload so the lists
		// never show another project's data.
		a.Conversations.Clear()
		a.Papers.Clear()
		if project == nil {
			return
		}
		a.Conversations.Fetch(ctx)
		a.Papers.Fetch(ctx)
	})

	a.Session.OnLogout(func() {
		a.Projects.Clear()
		a.Conversations.Clear()
		a.Papers.Clear()
		a.Verifications.Clear()
	})
}

// SendMessage is the high-level chat entry point: it forwards the message
// with the current settings snapshot.
func (a *App) SendMessage(ctx context.Context, conversationID int64, message string, filters map[string]any) (*model.ChatExchange, error) {
	return a.Conversations.SendMessage(ctx, conversationID, message, a.Settings.Snapshot(), filters)
}

// Close flushes background work and releases the state database.
func (a *App) Close() error {
	a.Papers.WaitBackground()
	if err := a.State.Close(); err != nil {
		return fmt.Errorf("failed to close state database: %w", err)
	}
	return nil
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Debug("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
