package types

// Snowflake identifiers issued by the chat platform. They are opaque to the
// bot and only compared for equality.

type GuildID string

func (x GuildID) String() string {
	return string(x)
}

type UserID string

func (x UserID) String() string {
	return string(x)
}

type ChannelID string

func (x ChannelID) String() string {
	return string(x)
}

type RoleID string

func (x RoleID) String() string {
	return string(x)
}

type MessageID string

func (x MessageID) String() string {
	return string(x)
}

const (
	EmptyChannelID ChannelID = ""
	EmptyMessageID MessageID = ""
)
