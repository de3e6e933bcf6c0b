package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/octagram/jaemin/pkg/cli/config"
	"github.com/octagram/jaemin/pkg/controller/server"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/infra"
	"github.com/octagram/jaemin/pkg/usecase"
	"github.com/octagram/jaemin/pkg/utils/logging"
	"github.com/octagram/jaemin/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr           string
		webhookSecret  string
		summaryTimeout time.Duration

		discordCfg config.Discord
		geminiCfg  config.Gemini
		sqliteCfg  config.SQLite
		sentryCfg  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       ":3000",
			Sources:     cli.EnvVars("JAEMIN_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "GitHub webhook secret. If empty, signature verification is skipped",
			Sources:     cli.EnvVars("JAEMIN_WEBHOOK_SECRET"),
			Destination: &webhookSecret,
		},
		&cli.DurationFlag{
			Name:        "summary-timeout",
			Usage:       "Max wait for an AI summary before falling back to the raw description",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("JAEMIN_SUMMARY_TIMEOUT"),
			Destination: &summaryTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			discordCfg.Flags(),
			geminiCfg.Flags(),
			sqliteCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("WebhookSecret", types.WebhookSecret(webhookSecret)),
				slog.Any("SummaryTimeout", summaryTimeout),
				slog.Any("Discord", discordCfg),
				slog.Any("Gemini", geminiCfg),
				slog.Any("SQLite", sqliteCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			directory, err := sqliteCfg.NewDirectory(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(directory)

			disc, err := discordCfg.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithDirectory(directory),
				infra.WithChatGateway(disc),
			}
			if genAI := geminiCfg.New(); genAI != nil {
				infraOptions = append(infraOptions, infra.WithGenAI(genAI))
			} else {
				logging.Default().Warn("gemini is not configured, summaries fall back to raw descriptions")
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients,
				usecase.WithWebhookSecret(types.WebhookSecret(webhookSecret)),
				usecase.WithSummaryTimeout(summaryTimeout),
			)
			uc.StartSummarizeResponder(ctx)

			disc.BindUseCase(uc)
			if err := disc.Start(ctx); err != nil {
				return err
			}
			defer safe.Close(disc)

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
