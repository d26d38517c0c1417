package config

import (
	"log/slog"

	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/service/transcript"
	"github.com/urfave/cli/v3"
)

type Transcript struct {
	logChannel string
	dir        string
}

func (x *Transcript) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "transcript-log-channel",
			Usage:       "Channel ID that transcripts are uploaded to (optional, falls back to local files)",
			Category:    "Transcript",
			Sources:     cli.EnvVars("HELPDESK_TRANSCRIPT_LOG_CHANNEL"),
			Destination: &x.logChannel,
		},
		&cli.StringFlag{
			Name:        "transcript-dir",
			Usage:       "Local directory for transcripts when no log channel is set",
			Category:    "Transcript",
			Sources:     cli.EnvVars("HELPDESK_TRANSCRIPT_DIR"),
			Value:       "transcripts",
			Destination: &x.dir,
		},
	}
}

func (x Transcript) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("log_channel", x.logChannel),
		slog.String("dir", x.dir),
	)
}

// Options translates the configuration into exporter options.
func (x *Transcript) Options() []transcript.Option {
	var opts []transcript.Option
	if x.logChannel != "" {
		opts = append(opts, transcript.WithLogChannel(types.ChannelID(x.logChannel)))
	}
	if x.dir != "" {
		opts = append(opts, transcript.WithDir(x.dir))
	}
	return opts
}
