package interfaces

import (
	"context"

	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/ticket"
	"github.com/pixel-node/helpdesk/pkg/domain/model/transcript"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

// TicketUsecases is the operation surface the controller dispatches
// interaction events to.
type TicketUsecases interface {
	CreateTicket(ctx context.Context, guildID types.GuildID, requester chat.User, category types.Category) (*chat.Channel, error)
	AuthorizeClose(ctx context.Context, guildID types.GuildID, actor types.UserID, channelID types.ChannelID) (bool, error)
	CloseTicket(ctx context.Context, guildID types.GuildID, channelID types.ChannelID, exportEnabled bool) error
	ExportTranscript(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) (*transcript.Result, error)
}

// TicketRepository tracks open tickets for the lifetime of the process.
type TicketRepository interface {
	Has(key ticket.Key) bool
	Put(t *ticket.Ticket)
	Remove(key ticket.Key)
	GetByChannel(channelID types.ChannelID) *ticket.Ticket
	RemoveByChannel(channelID types.ChannelID)

	// LockKey serializes ticket creation per key across the provisioning
	// await. The returned func releases the lock.
	LockKey(key ticket.Key) func()
}
