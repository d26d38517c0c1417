package transcript_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/pixel-node/helpdesk/pkg/domain/mock"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/service/transcript"
	"github.com/pixel-node/helpdesk/pkg/utils/clock"
)

// historyGateway serves a synthetic channel history of n messages through
// the paginated fetch API, newest first, the way the platform does.
func historyGateway(n int) *mock.ChannelGatewayMock {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	history := make([]*chat.Message, n)
	for i := range n {
		history[i] = &chat.Message{
			ID:         types.MessageID(fmt.Sprintf("m-%06d", i)),
			AuthorID:   "user-1",
			AuthorName: "alice",
			Body:       fmt.Sprintf("message %d", i),
			Timestamp:  base.Add(time.Duration(i) * time.Second),
		}
	}

	return &mock.ChannelGatewayMock{
		FetchMessagePageFunc: func(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
			// Newest first, strictly older than the cursor.
			end := len(history)
			if before != types.EmptyMessageID {
				for i, m := range history {
					if m.ID == before {
						end = i
						break
					}
				}
			}

			var page []*chat.Message
			for i := end - 1; i >= 0 && len(page) < limit; i-- {
				page = append(page, history[i])
			}
			return page, nil
		},
		PostFileFunc: func(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error {
			return nil
		},
	}
}

func testChannel() *chat.Channel {
	return &chat.Channel{
		ID:      "ch-1",
		GuildID: "guild-1",
		Name:    "ticket-billing-alice",
		Topic:   "ticket|user-1",
	}
}

func TestExportPagination(t *testing.T) {
	tests := []struct {
		n     int
		calls int
	}{
		{n: 0, calls: 1},
		{n: 1, calls: 1},
		{n: 100, calls: 2},
		{n: 101, calls: 2},
		{n: 250, calls: 3},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d messages", tc.n), func(t *testing.T) {
			gw := historyGateway(tc.n)
			exporter := transcript.New(gw, transcript.WithDir(t.TempDir()))

			result := gt.R1(exporter.Export(t.Context(), testChannel())).NoError(t)
			gt.Equal(t, result.MessageCount, tc.n)
			gt.Array(t, gw.FetchMessagePageCalls()).Length(tc.calls)

			// The rendered transcript lists every message once, oldest
			// first.
			data := gt.R1(os.ReadFile(result.Path)).NoError(t)
			content := string(data)
			last := -1
			for i := range tc.n {
				line := fmt.Sprintf("alice: message %d\n", i)
				idx := indexAfter(content, line, last)
				gt.Number(t, idx).Greater(last)
				last = idx
			}
		})
	}
}

// indexAfter returns the index of sub in s strictly after from, or -1.
func indexAfter(s, sub string, from int) int {
	for i := from + 1; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestExportPageSizeIs100(t *testing.T) {
	gw := historyGateway(101)
	exporter := transcript.New(gw, transcript.WithDir(t.TempDir()))

	gt.R1(exporter.Export(t.Context(), testChannel())).NoError(t)

	calls := gw.FetchMessagePageCalls()
	gt.Array(t, calls).Length(2)
	gt.Equal(t, calls[0].Limit, 100)
	gt.Equal(t, calls[0].Before, types.EmptyMessageID)
	// The cursor advances to the oldest message of the first page.
	gt.Equal(t, calls[1].Before, types.MessageID("m-000001"))
}

func TestExportDeliversToLogChannel(t *testing.T) {
	gw := historyGateway(3)
	dir := t.TempDir()
	exporter := transcript.New(gw,
		transcript.WithLogChannel("ch-log"),
		transcript.WithDir(dir),
	)

	result := gt.R1(exporter.Export(t.Context(), testChannel())).NoError(t)
	gt.True(t, result.Delivered())
	gt.Equal(t, result.LogChannel, types.ChannelID("ch-log"))
	gt.Equal(t, result.Path, "")

	calls := gw.PostFileCalls()
	gt.Array(t, calls).Length(1)
	gt.Equal(t, calls[0].ChannelID, types.ChannelID("ch-log"))
	gt.Equal(t, calls[0].Comment, "Transcript for ticket-billing-alice")
	gt.S(t, calls[0].Filename).Contains("ticket-billing-alice-transcript-")

	// The local fallback is never used when a log channel is configured.
	entries := gt.R1(os.ReadDir(dir)).NoError(t)
	gt.Array(t, entries).Length(0)
}

func TestExportFallsBackToLocalFile(t *testing.T) {
	gw := historyGateway(2)
	dir := filepath.Join(t.TempDir(), "transcripts")
	exporter := transcript.New(gw, transcript.WithDir(dir))

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	ctx := clock.With(t.Context(), func() time.Time { return now })

	result := gt.R1(exporter.Export(ctx, testChannel())).NoError(t)
	gt.False(t, result.Delivered())
	gt.Equal(t, result.Filename, fmt.Sprintf("ticket-billing-alice-transcript-%d.txt", now.UnixMilli()))
	gt.Equal(t, result.Path, filepath.Join(dir, result.Filename))

	// The directory is created on demand.
	data := gt.R1(os.ReadFile(result.Path)).NoError(t)
	gt.S(t, string(data)).Contains("Transcript for #ticket-billing-alice")
	gt.S(t, string(data)).Contains("alice: message 0")
	gt.S(t, string(data)).Contains("alice: message 1")

	pattern := regexp.MustCompile(`^ticket-billing-alice-transcript-\d+\.txt$`)
	gt.True(t, pattern.MatchString(result.Filename))

	gt.Array(t, gw.PostFileCalls()).Length(0)
}

func TestExportRendersAttachments(t *testing.T) {
	gw := historyGateway(1)
	fetch := gw.FetchMessagePageFunc
	gw.FetchMessagePageFunc = func(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
		page, err := fetch(ctx, channelID, limit, before)
		for _, m := range page {
			m.AttachmentURLs = []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.log"}
		}
		return page, err
	}

	exporter := transcript.New(gw, transcript.WithDir(t.TempDir()))
	result := gt.R1(exporter.Export(t.Context(), testChannel())).NoError(t)

	data := gt.R1(os.ReadFile(result.Path)).NoError(t)
	gt.S(t, string(data)).Contains("  (attachment) https://cdn.example.com/a.png")
	gt.S(t, string(data)).Contains("  (attachment) https://cdn.example.com/b.log")
}

func TestExportFetchFailure(t *testing.T) {
	gw := historyGateway(0)
	gw.FetchMessagePageFunc = func(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
		return nil, goerr.New("history unavailable")
	}
	exporter := transcript.New(gw, transcript.WithDir(t.TempDir()))

	_, err := exporter.Export(t.Context(), testChannel())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errs.ErrTranscriptFetch))
}

func TestExportDeliveryFailure(t *testing.T) {
	gw := historyGateway(1)
	gw.PostFileFunc = func(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error {
		return goerr.New("upload rejected")
	}
	exporter := transcript.New(gw, transcript.WithLogChannel("ch-log"))

	_, err := exporter.Export(t.Context(), testChannel())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errs.ErrTranscriptDelivery))
}
