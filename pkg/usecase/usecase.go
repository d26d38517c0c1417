package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/pixel-node/helpdesk/pkg/domain/interfaces"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/service/transcript"
	"github.com/pixel-node/helpdesk/pkg/utils/logging"
)

// closeGraceDelay gives in-flight UI acknowledgements time to be seen before
// the ticket channel disappears.
const closeGraceDelay = 5 * time.Second

type UseCases struct {
	gateway  interfaces.ChannelGateway
	repo     interfaces.TicketRepository
	exporter *transcript.Exporter

	staffRole      types.RoleID
	parentCategory types.ChannelID
	closeDelay     time.Duration

	// Pending channel deletions, cancelable on shutdown.
	timerMu sync.Mutex
	timers  map[types.ChannelID]*time.Timer
	wg      sync.WaitGroup
}

var _ interfaces.TicketUsecases = &UseCases{}

type Option func(*UseCases)

// WithCloseDelay overrides the grace delay before channel deletion.
func WithCloseDelay(d time.Duration) Option {
	return func(u *UseCases) {
		u.closeDelay = d
	}
}

// WithParentCategory places new ticket channels under the given category
// channel.
func WithParentCategory(channelID types.ChannelID) Option {
	return func(u *UseCases) {
		u.parentCategory = channelID
	}
}

func New(gateway interfaces.ChannelGateway, repo interfaces.TicketRepository, exporter *transcript.Exporter, staffRole types.RoleID, opts ...Option) *UseCases {
	u := &UseCases{
		gateway:    gateway,
		repo:       repo,
		exporter:   exporter,
		staffRole:  staffRole,
		closeDelay: closeGraceDelay,
		timers:     make(map[types.ChannelID]*time.Timer),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Shutdown stops pending deletion timers and waits for deletions already in
// flight. Tickets whose grace period had not elapsed keep their channels;
// their registry entries die with the process anyway.
func (uc *UseCases) Shutdown(ctx context.Context) {
	uc.timerMu.Lock()
	for channelID, timer := range uc.timers {
		if timer.Stop() {
			// The deletion callback will never run for a stopped timer.
			uc.wg.Done()
			logging.From(ctx).Info("canceled pending ticket deletion", "channel_id", channelID)
		}
		delete(uc.timers, channelID)
	}
	uc.timerMu.Unlock()

	uc.wg.Wait()
}
