package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/cli/config"
	controller "github.com/pixel-node/helpdesk/pkg/controller/discord"
	"github.com/pixel-node/helpdesk/pkg/repository"
	discordsvc "github.com/pixel-node/helpdesk/pkg/service/discord"
	transcriptsvc "github.com/pixel-node/helpdesk/pkg/service/transcript"
	"github.com/pixel-node/helpdesk/pkg/usecase"
	"github.com/pixel-node/helpdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		sentryCfg     config.Sentry
		discordCfg    config.Discord
		transcriptCfg config.Transcript
	)

	flags := joinFlags(
		sentryCfg.Flags(),
		discordCfg.Flags(),
		transcriptCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the ticket bot",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting helpdesk",
				"sentry", sentryCfg,
				"discord", discordCfg,
				"transcript", transcriptCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			session, err := discordCfg.Configure()
			if err != nil {
				return err
			}

			gateway := discordsvc.New(session)
			repo := repository.NewMemory()
			exporter := transcriptsvc.New(gateway, transcriptCfg.Options()...)

			uc := usecase.New(gateway, repo, exporter, discordCfg.StaffRole(),
				usecase.WithParentCategory(discordCfg.ParentCategory()),
			)

			ctrl := controller.New(session, uc)
			ctrl.Register(session)

			if err := session.Open(); err != nil {
				return goerr.Wrap(err, "failed to open gateway connection")
			}

			logging.From(ctx).Info("helpdesk is running",
				"staff_role", discordCfg.StaffRole(),
				"transcript_delivery", exporter.HasLogChannel(),
			)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			logging.From(ctx).Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			uc.Shutdown(shutdownCtx)

			if err := session.Close(); err != nil {
				return goerr.Wrap(err, "failed to close gateway connection")
			}
			return nil
		},
	}
}
