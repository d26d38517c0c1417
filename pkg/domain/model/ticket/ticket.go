package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

// Key identifies an open ticket. At most one live channel may exist per key
// at any time.
type Key struct {
	GuildID   types.GuildID
	Requester types.UserID
	Category  types.Category
}

func NewKey(guildID types.GuildID, requester types.UserID, category types.Category) Key {
	return Key{
		GuildID:   guildID,
		Requester: requester,
		Category:  category,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%s-%s", k.GuildID, k.Requester, k.Category)
}

type Status string

const (
	StatusOpen    Status = "open"
	StatusClosing Status = "closing"
	StatusClosed  Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// Ticket is an open ticket tracked in process memory. It does not survive a
// restart; closure authorization relies on the channel topic instead.
type Ticket struct {
	Key       Key
	ChannelID types.ChannelID
	Status    Status
	CreatedAt time.Time
}

func New(key Key, channelID types.ChannelID, createdAt time.Time) *Ticket {
	return &Ticket{
		Key:       key,
		ChannelID: channelID,
		Status:    StatusOpen,
		CreatedAt: createdAt,
	}
}

// topicPrefix tags a ticket channel topic with the requester who opened it.
// The topic is the authoritative record of who may close the ticket, so that
// authorization does not depend on in-memory state.
const topicPrefix = "ticket"

const topicSeparator = "|"

func EncodeTopic(requester types.UserID) string {
	return topicPrefix + topicSeparator + requester.String()
}

// DecodeTopic extracts the requester ID from a ticket channel topic. It
// returns false for an empty, foreign, or garbled topic, in which case only
// staff may close the ticket.
func DecodeTopic(topic string) (types.UserID, bool) {
	prefix, id, found := strings.Cut(topic, topicSeparator)
	if !found || prefix != topicPrefix || id == "" {
		return "", false
	}
	return types.UserID(id), true
}

// maxSafeNameLen bounds the requester-derived part of a channel name.
const maxSafeNameLen = 20

// SafeName normalizes a display name for use in a channel name: lower-cased,
// restricted to [a-z0-9-], truncated to maxSafeNameLen. Falls back to the
// requester's numeric ID when nothing survives normalization.
func SafeName(displayName string, fallback types.UserID) string {
	var b strings.Builder
	for _, r := range strings.ToLower(displayName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
		if b.Len() >= maxSafeNameLen {
			break
		}
	}
	if b.Len() == 0 {
		return fallback.String()
	}
	return b.String()
}

// ChannelName derives the display name of a ticket channel, e.g.
// "ticket-billing-alice".
func ChannelName(category types.Category, displayName string, fallback types.UserID) string {
	return fmt.Sprintf("ticket-%s-%s", category, SafeName(displayName, fallback))
}
