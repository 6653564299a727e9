// Package askcmder provides the ask command for one-shot questions from
// the terminal.
package askcmder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/chat"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/config"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
	embeddingutils "github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings/utils"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/logger"
)

type AskCommander struct {
	configDir   string
	debug       bool
	showSources bool
	logger      *slog.Logger
}

const askLongDesc string = `Ask the portfolio assistant a question.

Builds the knowledge index, retrieves the most relevant portfolio
content, and prints the model's grounded answer.`

func NewAskCmd() *cobra.Command {
	cmder := &AskCommander{}

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the portfolio assistant a question",
		Long:  askLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, err = cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("could not get config flag: %v", err)
			}
			return cmder.run(strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVarP(&cmder.showSources, "sources", "s", false, "Print the retrieved context behind the answer")

	return cmd
}

func (c *AskCommander) run(question string) error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithPretty(true))

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return err
	}
	cfg := config.FromViper(v)

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

	caller, err := chat.NewCaller(chat.CallerConfig{
		Provider: cfg.Chat.Provider,
		Model:    cfg.Chat.Model,
		APIKey:   cfg.Chat.APIKey,
		BaseURL:  cfg.Chat.Target,
	})
	if err != nil {
		return fmt.Errorf("creating chat caller: %w", err)
	}

	service, err := chat.NewService(chat.ServiceConfig{
		Store:    store,
		Call:     caller,
		TopK:     cfg.Search.TopK,
		MinScore: float32(cfg.Search.MinScore),
		Logger:   c.logger,
	})
	if err != nil {
		return err
	}

	answer, err := service.Ask(context.Background(), question)
	if err != nil {
		return err
	}

	fmt.Println(answer.Text)

	if c.showSources && len(answer.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range answer.Sources {
			fmt.Printf("  [%s] score %.3f\n", src.Type, src.Score)
		}
	}

	return nil
}
