package config

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Discord struct {
	token          string
	staffRole      string
	parentCategory string
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Sources:     cli.EnvVars("HELPDESK_DISCORD_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "discord-staff-role",
			Usage:       "Role ID granted access to every ticket channel",
			Category:    "Discord",
			Sources:     cli.EnvVars("HELPDESK_DISCORD_STAFF_ROLE"),
			Destination: &x.staffRole,
		},
		&cli.StringFlag{
			Name:        "discord-parent-category",
			Usage:       "Category channel ID that ticket channels are created under (optional)",
			Category:    "Discord",
			Sources:     cli.EnvVars("HELPDESK_DISCORD_PARENT_CATEGORY"),
			Destination: &x.parentCategory,
		},
	}
}

func (x Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token_len", len(x.token)),
		slog.String("staff_role", x.staffRole),
		slog.String("parent_category", x.parentCategory),
	)
}

func (x *Discord) StaffRole() types.RoleID {
	return types.RoleID(x.staffRole)
}

func (x *Discord) ParentCategory() types.ChannelID {
	return types.ChannelID(x.parentCategory)
}

// Configure builds the gateway session. The connection is not opened here;
// the caller opens it after handlers are registered.
func (x *Discord) Configure() (*discordgo.Session, error) {
	if x.token == "" {
		return nil, goerr.New("discord bot token is required (--discord-token)")
	}
	if x.staffRole == "" {
		return nil, goerr.New("staff role ID is required (--discord-staff-role)")
	}

	session, err := discordgo.New("Bot " + x.token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create discord session")
	}

	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	return session, nil
}
