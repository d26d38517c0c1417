package interfaces

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

//go:generate moq -out ../mock/gateway.go -pkg mock . ChannelGateway DiscordClient

// ChannelGateway is the capability surface the ticket core requires from the
// chat platform. The discord service is the production implementation.
type ChannelGateway interface {
	// CreateTicketChannel provisions a private text channel visible only to
	// the requester and the staff role named in the request.
	CreateTicketChannel(ctx context.Context, guildID types.GuildID, req chat.TicketChannelRequest) (*chat.Channel, error)

	SetTopic(ctx context.Context, channelID types.ChannelID, topic string) error
	GetChannel(ctx context.Context, channelID types.ChannelID) (*chat.Channel, error)
	DeleteChannel(ctx context.Context, channelID types.ChannelID) error

	// PostTicketWelcome posts the initial ticket message mentioning the
	// requester and the staff role, with the close/export controls attached.
	PostTicketWelcome(ctx context.Context, channelID types.ChannelID, requester types.UserID, staffRole types.RoleID, category types.Category) error

	// PostFile uploads a file attachment with a leading comment.
	PostFile(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error

	// FetchMessagePage returns up to limit messages older than before,
	// newest first, matching the platform's history API. An empty before
	// cursor means "most recent".
	FetchMessagePage(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error)

	MemberHasRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) (bool, error)
}

// DiscordClient is the slice of *discordgo.Session the discord service uses.
type DiscordClient interface {
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelEditComplex(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
}
