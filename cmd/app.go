package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/ai/gemini"
	"github.com/spigell/interview-panel/internal/ai/remote"
	"github.com/spigell/interview-panel/internal/auth"
	"github.com/spigell/interview-panel/internal/logger"
	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/secrets"
	"github.com/spigell/interview-panel/internal/session"
	"github.com/spigell/interview-panel/internal/toast"
)

const (
	sessionFile   = "file"
	sessionRedis  = "redis"
	sessionMemory = "memory"

	providerRemote = "remote"
	providerGemini = "gemini"
)

var errNotSignedIn = errors.New("not signed in, run 'interview-panel login' first")

// application carries the components every command works with.
type application struct {
	config   *Config
	logger   *zap.Logger
	client   *platform.Client
	store    *session.Store
	auth     *auth.State
	notifier *toast.Notifier

	closers []func() error
}

func newApplication(ctx context.Context) (*application, error) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}
	if config == nil || config.API == nil || config.Session == nil || config.AI == nil {
		return nil, errors.New("config is incomplete")
	}

	app := &application{
		config: config,
		logger: logger,
		notifier: toast.NewNotifier(
			toast.NewQueue(),
			toast.NewPrinter(os.Stderr, toast.ResolveColors(viper.GetBool("no-color"))),
			logger,
		),
	}

	app.client = platform.New(logger, platform.Options{
		BaseURL:   config.API.BaseURL,
		AuthURL:   config.API.AuthURL,
		UserAgent: config.API.UserAgent,
	})

	slot, err := app.openSlot(ctx)
	if err != nil {
		return nil, err
	}

	app.store = session.New(slot, logger)
	app.auth = auth.New(app.store, app.client, logger)

	logger.Debug("starting the interview-panel",
		zap.String("version", version),
		zap.String("api", app.client.BaseURL),
		zap.String("session_backend", config.Session.Backend),
	)

	return app, nil
}

func (a *application) openSlot(ctx context.Context) (session.Slot, error) {
	cfg := a.config.Session
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if viper.GetBool("ephemeral") {
		backend = sessionMemory
	}

	switch backend {
	case sessionMemory:
		return session.NewMemorySlot(), nil
	case sessionRedis:
		client, err := session.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to the redis session backend: %w", err)
		}
		a.closers = append(a.closers, client.Close)

		return session.NewRedisSlot(client, cfg.RedisPrefix, cfg.TTL), nil
	case "", sessionFile:
		path := strings.TrimSpace(cfg.File)
		if path == "" {
			var err error
			path, err = session.DefaultPath(appName)
			if err != nil {
				a.logger.Warn("session will not be saved", zap.Error(err))
				return nil, nil
			}
		}
		return session.NewFileSlot(path), nil
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", cfg.Backend)
	}
}

func (a *application) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Debug("closing resource", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// requireUser restores the saved session and fails when nobody is signed in.
func (a *application) requireUser(ctx context.Context) (*auth.UserProfile, error) {
	user := a.auth.Init(ctx)
	if user == nil {
		return nil, errNotSignedIn
	}
	return user, nil
}

func (a *application) requireRecruiter(ctx context.Context) (*auth.UserProfile, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !a.auth.IsRecruiter() {
		return nil, fmt.Errorf("%s is signed in as %s; this command is for recruiters", user.Email, user.Type)
	}
	return user, nil
}

func (a *application) questionGenerator(ctx context.Context) (ai.QuestionGenerator, error) {
	cfg := a.config.AI
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", providerRemote:
		return remote.New(a.client, cfg.Endpoint, a.logger), nil
	case providerGemini:
		return newGeminiWriter(ctx, cfg, a.logger)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

func newGeminiWriter(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.QuestionGenerator, error) {
	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  gcfg.APIKeyFile,
		Value: gcfg.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewQuestionWriter(generator, logger.With(zap.String("model", generator.Model())), gcfg.MaxLogLength), nil
}

type action func(ctx context.Context, app *application, cmd *cobra.Command, args []string) error

// withApp builds the application for a command. A failed action is shown as
// an error toast and ends the process.
func withApp(fn action) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		app, err := newApplication(ctx)
		if err != nil {
			log.Fatal(err)
		}

		if err := fn(ctx, app, cmd, args); err != nil {
			app.notifier.Fail(err)
			app.Close()
			app.logger.Fatal(cmd.CommandPath()+" failed", zap.Error(err))
		}

		app.Close()
	}
}
