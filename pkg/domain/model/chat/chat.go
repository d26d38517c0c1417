// Package chat holds platform-neutral models of the chat primitives the bot
// works with. The discord service converts SDK types into these models so
// that the use case and transcript layers never import the SDK directly.
package chat

import (
	"time"

	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

type User struct {
	ID types.UserID
	// Name is the display name used to derive ticket channel names. It may
	// contain characters that are not valid in a channel name.
	Name string
}

type Channel struct {
	ID      types.ChannelID
	GuildID types.GuildID
	Name    string
	Topic   string
}

type Message struct {
	ID             types.MessageID
	AuthorID       types.UserID
	AuthorName     string
	Body           string
	Timestamp      time.Time
	AttachmentURLs []string
}

// TicketChannelRequest describes a private ticket channel to provision. The
// gateway grants view/send/history to the requester and the staff role and
// denies visibility to everyone else.
type TicketChannelRequest struct {
	Name      string
	ParentID  types.ChannelID
	Requester types.UserID
	StaffRole types.RoleID
}
