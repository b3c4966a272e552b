package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/inkpost/inkpost-go/config"
	"github.com/inkpost/inkpost-go/internal/adapters/tokenstore"
	"github.com/inkpost/inkpost-go/internal/api"
	"github.com/inkpost/inkpost-go/internal/ports"
	"github.com/inkpost/inkpost-go/internal/posts"
	"github.com/inkpost/inkpost-go/internal/session"
)

// App wires the data-access layer: token storage, the API client, the
// session manager, and the post facade. The presentation layer (cmd/inkpost)
// talks only to Session and Posts.
type App struct {
	Config  config.AppConfig
	Logger  *slog.Logger
	Tokens  ports.TokenStore
	API     *api.Client
	Session *session.Manager
	Posts   *posts.Facade

	redisClient redis.UniversalClient
}

// NewApp builds the dependency graph from cfg. Unauthorized responses
// detected by the API client tear down the session manager's state; further
// reaction is up to Session subscribers.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tokens, redisClient, err := buildTokenStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Tokens:  tokens,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	manager := session.NewManager(session.Options{
		API:    client,
		Tokens: tokens,
		Logger: logger,
	})
	client.OnUnauthorized(manager.HandleUnauthorized)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Tokens:      tokens,
		API:         client,
		Session:     manager,
		Posts:       posts.NewFacade(client),
		redisClient: redisClient,
	}, nil
}

// Close releases held connections.
func (a *App) Close() error {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	return nil
}

// buildTokenStore selects the durable storage adapter from config.
//
//nolint:ireturn // returning the port keeps the adapter choice behind the interface.
func buildTokenStore(cfg config.StorageConfig) (ports.TokenStore, redis.UniversalClient, error) {
	switch cfg.Backend {
	case config.TokenBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := tokenstore.NewRedisStoreWithOptions(client, cfg.Redis.Key, cfg.Redis.TokenTTL)
		return store, client, nil

	case config.TokenBackendFile, "":
		path := cfg.TokenFile
		if path == "" {
			defaultPath, err := tokenstore.DefaultPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve token path: %w", err)
			}
			path = defaultPath
		}
		store, err := tokenstore.NewFileStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("build file token store: %w", err)
		}
		return store, nil, nil

	default:
		return nil, nil, errors.New("unknown token storage backend")
	}
}
