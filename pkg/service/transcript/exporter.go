// Package transcript renders the full history of a ticket channel into a
// plain-text artifact and routes it to the log channel or, when none is
// configured, to a local fallback directory.
package transcript

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/domain/interfaces"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	"github.com/pixel-node/helpdesk/pkg/domain/model/transcript"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/utils/clock"
	"github.com/pixel-node/helpdesk/pkg/utils/logging"
)

// pageSize is the platform's maximum history page.
const pageSize = 100

const defaultDir = "transcripts"

type Exporter struct {
	gateway    interfaces.ChannelGateway
	logChannel types.ChannelID
	dir        string
}

type Option func(*Exporter)

// WithLogChannel routes exported transcripts to the given channel instead of
// the local fallback directory.
func WithLogChannel(channelID types.ChannelID) Option {
	return func(x *Exporter) {
		x.logChannel = channelID
	}
}

// WithDir overrides the local fallback directory.
func WithDir(dir string) Option {
	return func(x *Exporter) {
		x.dir = dir
	}
}

func New(gateway interfaces.ChannelGateway, opts ...Option) *Exporter {
	x := &Exporter{
		gateway: gateway,
		dir:     defaultDir,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// HasLogChannel reports whether a durable log destination is configured.
func (x *Exporter) HasLogChannel() bool {
	return x.logChannel != types.EmptyChannelID
}

// Export retrieves the complete history of the channel, renders it, and
// delivers the artifact. The returned result records where it went.
func (x *Exporter) Export(ctx context.Context, channel *chat.Channel) (*transcript.Result, error) {
	messages, err := x.fetchAll(ctx, channel.ID)
	if err != nil {
		return nil, goerr.Wrap(errs.ErrTranscriptFetch, err.Error(),
			goerr.V("channel_id", channel.ID),
		)
	}

	data := x.render(ctx, channel, messages)
	filename := fmt.Sprintf("%s-transcript-%d.txt", channel.Name, clock.Now(ctx).UnixMilli())

	result := &transcript.Result{
		Filename:     filename,
		MessageCount: len(messages),
	}

	if x.HasLogChannel() {
		comment := fmt.Sprintf("Transcript for %s", channel.Name)
		if err := x.gateway.PostFile(ctx, x.logChannel, comment, filename, data); err != nil {
			return nil, goerr.Wrap(errs.ErrTranscriptDelivery, err.Error(),
				goerr.V("log_channel", x.logChannel),
				goerr.V("filename", filename),
			)
		}
		result.LogChannel = x.logChannel
		return result, nil
	}

	path, err := x.store(filename, data)
	if err != nil {
		return nil, goerr.Wrap(errs.ErrTranscriptDelivery, err.Error(),
			goerr.V("dir", x.dir),
			goerr.V("filename", filename),
		)
	}
	result.Path = path

	logging.From(ctx).Info("transcript stored locally",
		"path", path,
		"messages", len(messages),
	)
	return result, nil
}

// fetchAll pages backwards through the channel history and returns all
// messages in chronological order. Assumes no concurrent deletions.
func (x *Exporter) fetchAll(ctx context.Context, channelID types.ChannelID) ([]*chat.Message, error) {
	var all []*chat.Message
	var before types.MessageID

	for {
		page, err := x.gateway.FetchMessagePage(ctx, channelID, pageSize, before)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		// Pages arrive newest first; the oldest entry becomes the next
		// cursor. Older pages go in front of what we already have.
		before = page[len(page)-1].ID
		slices.Reverse(page)
		all = append(page, all...)

		if len(page) < pageSize {
			break
		}
	}

	return all, nil
}

func (x *Exporter) render(ctx context.Context, channel *chat.Channel, messages []*chat.Message) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Transcript for #%s - %s\n\n", channel.Name, clock.Now(ctx).UTC().Format(time.RFC3339))
	for _, m := range messages {
		fmt.Fprintf(&buf, "[%s] %s: %s\n", m.Timestamp.UTC().Format(time.RFC3339), m.AuthorName, m.Body)
		for _, url := range m.AttachmentURLs {
			fmt.Fprintf(&buf, "  (attachment) %s\n", url)
		}
	}

	return buf.Bytes()
}

func (x *Exporter) store(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(x.dir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create transcript directory")
	}

	path := filepath.Join(x.dir, filename)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", goerr.Wrap(err, "failed to write transcript file")
	}
	return path, nil
}
