package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsketch/flowsketch/internal/server"
	"github.com/flowsketch/flowsketch/pkg/cache"
	"github.com/flowsketch/flowsketch/pkg/pipeline"
	"github.com/flowsketch/flowsketch/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		storeDir string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the flowsketch HTTP API",
		Long: `Run the flowsketch HTTP API.

The server exposes the layout pipeline over HTTP and stores diagrams.
By default it uses a file cache and file-based diagram storage suitable
for a single instance. For multi-instance deployments, point --redis at
a shared cache and --mongo at a shared diagram store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, storeDir, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for shared caching (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for shared diagram storage (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&storeDir, "store-dir", "", "directory for file-based diagram storage (default: ~/.local/share/flowsketch/diagrams)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache, store, and runner, then serves until ctx is
// cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI, storeDir string, noCache bool) error {
	serverCache, err := c.newServerCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	st, err := c.newServerStore(ctx, mongoURI, storeDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(context.Background()) }()

	runner := pipeline.NewRunner(serverCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, st, c.Logger)
	return srv.ListenAndServe(ctx, addr)
}

func (c *CLI) newServerCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		c.Logger.Info("using redis cache")
		return rc, nil
	}
	return newCache(false)
}

func (c *CLI) newServerStore(ctx context.Context, mongoURI, storeDir string) (store.Store, error) {
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		c.Logger.Info("using mongo diagram store")
		return ms, nil
	}
	fs, err := store.NewFileStore(storeDir)
	if err != nil {
		return nil, fmt.Errorf("initialize diagram store: %w", err)
	}
	c.Logger.Info("using file diagram store", "dir", fs.Path())
	return fs, nil
}
