package discord

import (
	"bytes"
	"context"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/domain/interfaces"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

// Service adapts the Discord REST API to the ChannelGateway surface the
// ticket core depends on.
type Service struct {
	client interfaces.DiscordClient
}

var _ interfaces.ChannelGateway = &Service{}

func New(client interfaces.DiscordClient) *Service {
	return &Service{client: client}
}

const ticketChannelPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

func (x *Service) CreateTicketChannel(ctx context.Context, guildID types.GuildID, req chat.TicketChannelRequest) (*chat.Channel, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			// The @everyone role shares its ID with the guild.
			ID:   guildID.String(),
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    req.Requester.String(),
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketChannelPermissions,
		},
		{
			ID:    req.StaffRole.String(),
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: ticketChannelPermissions,
		},
	}

	ch, err := x.client.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:                 req.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             req.ParentID.String(),
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create guild channel",
			goerr.T(errs.TagExternal),
			goerr.V("guild_id", guildID),
			goerr.V("name", req.Name),
		)
	}

	return toChannel(ch), nil
}

func (x *Service) SetTopic(ctx context.Context, channelID types.ChannelID, topic string) error {
	if _, err := x.client.ChannelEditComplex(channelID.String(), &discordgo.ChannelEdit{
		Topic: topic,
	}); err != nil {
		return goerr.Wrap(err, "failed to set channel topic",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
		)
	}
	return nil
}

func (x *Service) GetChannel(ctx context.Context, channelID types.ChannelID) (*chat.Channel, error) {
	ch, err := x.client.Channel(channelID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get channel",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
		)
	}
	return toChannel(ch), nil
}

func (x *Service) DeleteChannel(ctx context.Context, channelID types.ChannelID) error {
	if _, err := x.client.ChannelDelete(channelID.String()); err != nil {
		return goerr.Wrap(err, "failed to delete channel",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
		)
	}
	return nil
}

func (x *Service) PostTicketWelcome(ctx context.Context, channelID types.ChannelID, requester types.UserID, staffRole types.RoleID, category types.Category) error {
	if _, err := x.client.ChannelMessageSendComplex(channelID.String(), WelcomeMessage(requester, staffRole, category)); err != nil {
		return goerr.Wrap(err, "failed to post ticket welcome",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
		)
	}
	return nil
}

func (x *Service) PostFile(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error {
	msg := &discordgo.MessageSend{
		Content: comment,
		Files: []*discordgo.File{
			{
				Name:        filename,
				ContentType: "text/plain",
				Reader:      bytes.NewReader(data),
			},
		},
	}
	if _, err := x.client.ChannelMessageSendComplex(channelID.String(), msg); err != nil {
		return goerr.Wrap(err, "failed to upload file",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
			goerr.V("filename", filename),
		)
	}
	return nil
}

func (x *Service) FetchMessagePage(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
	page, err := x.client.ChannelMessages(channelID.String(), limit, before.String(), "", "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch channel messages",
			goerr.T(errs.TagExternal),
			goerr.V("channel_id", channelID),
			goerr.V("before", before),
		)
	}

	messages := make([]*chat.Message, 0, len(page))
	for _, m := range page {
		messages = append(messages, toMessage(m))
	}
	return messages, nil
}

func (x *Service) MemberHasRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) (bool, error) {
	member, err := x.client.GuildMember(guildID.String(), userID.String())
	if err != nil {
		return false, goerr.Wrap(err, "failed to get guild member",
			goerr.T(errs.TagExternal),
			goerr.V("guild_id", guildID),
			goerr.V("user_id", userID),
		)
	}

	return slices.Contains(member.Roles, roleID.String()), nil
}

func toChannel(ch *discordgo.Channel) *chat.Channel {
	return &chat.Channel{
		ID:      types.ChannelID(ch.ID),
		GuildID: types.GuildID(ch.GuildID),
		Name:    ch.Name,
		Topic:   ch.Topic,
	}
}

func toMessage(m *discordgo.Message) *chat.Message {
	msg := &chat.Message{
		ID:        types.MessageID(m.ID),
		Body:      m.Content,
		Timestamp: m.Timestamp,
	}
	if m.Author != nil {
		msg.AuthorID = types.UserID(m.Author.ID)
		msg.AuthorName = m.Author.String()
	} else {
		msg.AuthorName = "Unknown"
	}
	for _, att := range m.Attachments {
		msg.AttachmentURLs = append(msg.AttachmentURLs, att.URL)
	}
	return msg
}
