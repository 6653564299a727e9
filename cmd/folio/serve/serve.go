// Package servecmder provides the serve command running the API server.
package servecmder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/let-the-dreamers-rise/resume-sub000/api"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/chat"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/config"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
	embeddingutils "github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings/utils"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/logger"
)

type ServeCommander struct {
	listen    string
	configDir string
	debug     bool
	warm      bool
	logger    *slog.Logger
}

const serveLongDesc string = `Run the folio API server.

Serves semantic search and the portfolio assistant chat endpoint. The
knowledge index builds itself from portfolio content on the first query,
or at startup with --warm.`

const serveShortDesc string = "Run the search and chat API server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, err = cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("could not get config flag: %v", err)
			}
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address to listen on (overrides config)")
	cmd.Flags().BoolVar(&cmder.warm, "warm", false, "Build the knowledge index at startup instead of on first query")

	return cmd
}

func (c *ServeCommander) run() error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithJSON(true))

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return err
	}
	cfg := config.FromViper(v)

	if c.listen != "" {
		cfg.API.Listen = c.listen
	}

	embedder, err := embeddingutils.NewEmbedder(&embeddingutils.NewEmbedderOpts{
		ProviderType: cfg.Embedding.Provider,
		TargetURL:    cfg.Embedding.Target,
		Model:        cfg.Embedding.Model,
		APIKey:       cfg.Embedding.APIKey,
	})
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}
	defer embedder.Close()

	var provider content.Provider = content.NewStaticProvider()
	if cfg.Content.Dir != "" {
		provider = content.NewDirProvider(cfg.Content.Dir, nil)
	}

	store := knowledge.NewStore(knowledge.StoreConfig{
		Embedder:     embedder,
		Provider:     provider,
		BuildWorkers: cfg.Embedding.Workers,
		Logger:       c.logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Content.Dir != "" && cfg.Content.Watch {
		watcher, err := content.NewWatcher(cfg.Content.Dir, store, c.logger)
		if err != nil {
			return fmt.Errorf("watching content dir: %w", err)
		}
		defer watcher.Close()
		watcher.Start(ctx)
	}

	if c.warm {
		c.logger.Info("warming knowledge index")
		if err := store.Initialize(ctx); err != nil {
			return fmt.Errorf("warming knowledge index: %w", err)
		}
	}

	chatService, err := c.createChatService(store, cfg)
	if err != nil {
		// The server still serves search; the chat endpoint reports
		// unavailable until a provider is configured.
		c.logger.Warn("chat disabled", "error", err)
	}

	apiServer := api.NewServer(api.Config{
		ListenAddr:      cfg.API.Listen,
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}, store, chatService, c.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
		return apiServer.Shutdown()
	}
}

func (c *ServeCommander) createChatService(store *knowledge.Store, cfg *config.Config) (*chat.Service, error) {
	caller, err := chat.NewCaller(chat.CallerConfig{
		Provider: cfg.Chat.Provider,
		Model:    cfg.Chat.Model,
		APIKey:   cfg.Chat.APIKey,
		BaseURL:  cfg.Chat.Target,
	})
	if err != nil {
		return nil, err
	}

	return chat.NewService(chat.ServiceConfig{
		Store:    store,
		Call:     caller,
		TopK:     cfg.Search.TopK,
		MinScore: float32(cfg.Search.MinScore),
		Logger:   c.logger,
	})
}
