package transcript

import "github.com/pixel-node/helpdesk/pkg/domain/types"

// Result reports where an exported transcript ended up. Exactly one of
// LogChannel and Path is set: LogChannel when the transcript was delivered
// to the configured log channel, Path when it was written to local storage.
type Result struct {
	Filename     string
	MessageCount int

	LogChannel types.ChannelID
	Path       string
}

// Delivered reports whether the transcript reached the log channel rather
// than the local fallback store.
func (x *Result) Delivered() bool {
	return x.LogChannel != types.EmptyChannelID
}
