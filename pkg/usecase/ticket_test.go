package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/pixel-node/helpdesk/pkg/domain/mock"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	ticketmodel "github.com/pixel-node/helpdesk/pkg/domain/model/ticket"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/repository"
	"github.com/pixel-node/helpdesk/pkg/service/transcript"
	"github.com/pixel-node/helpdesk/pkg/usecase"
)

const (
	testGuild     types.GuildID   = "guild-1"
	testStaffRole types.RoleID    = "role-staff"
	testLogCh     types.ChannelID = "ch-log"
)

func newGatewayMock() *mock.ChannelGatewayMock {
	var mu sync.Mutex
	topics := map[types.ChannelID]string{}

	gw := &mock.ChannelGatewayMock{
		CreateTicketChannelFunc: func(ctx context.Context, guildID types.GuildID, req chat.TicketChannelRequest) (*chat.Channel, error) {
			return &chat.Channel{
				ID:      types.ChannelID("ch-" + req.Name),
				GuildID: guildID,
				Name:    req.Name,
			}, nil
		},
		SetTopicFunc: func(ctx context.Context, channelID types.ChannelID, topic string) error {
			mu.Lock()
			defer mu.Unlock()
			topics[channelID] = topic
			return nil
		},
		GetChannelFunc: func(ctx context.Context, channelID types.ChannelID) (*chat.Channel, error) {
			mu.Lock()
			defer mu.Unlock()
			return &chat.Channel{
				ID:      channelID,
				GuildID: testGuild,
				Name:    "ticket-billing-alice",
				Topic:   topics[channelID],
			}, nil
		},
		PostTicketWelcomeFunc: func(ctx context.Context, channelID types.ChannelID, requester types.UserID, staffRole types.RoleID, category types.Category) error {
			return nil
		},
		PostFileFunc: func(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error {
			return nil
		},
		DeleteChannelFunc: func(ctx context.Context, channelID types.ChannelID) error {
			return nil
		},
		FetchMessagePageFunc: func(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
			return nil, nil
		},
		MemberHasRoleFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) (bool, error) {
			return false, nil
		},
	}
	return gw
}

func newUseCases(gw *mock.ChannelGatewayMock, opts ...usecase.Option) (*usecase.UseCases, *repository.Memory) {
	repo := repository.NewMemory()
	exporter := transcript.New(gw, transcript.WithLogChannel(testLogCh))
	opts = append([]usecase.Option{usecase.WithCloseDelay(10 * time.Millisecond)}, opts...)
	return usecase.New(gw, repo, exporter, testStaffRole, opts...), repo
}

func TestCreateTicket(t *testing.T) {
	gw := newGatewayMock()
	uc, repo := newUseCases(gw)
	ctx := t.Context()

	alice := chat.User{ID: "user-1", Name: "Alice"}
	channel, err := uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)
	gt.NoError(t, err).Required()
	gt.Equal(t, channel.Name, "ticket-billing-alice")

	key := ticketmodel.NewKey(testGuild, alice.ID, types.CategoryBilling)
	gt.True(t, repo.Has(key))

	// Topic records the requester for closure authorization.
	gt.Array(t, gw.SetTopicCalls()).Length(1)
	gt.Equal(t, gw.SetTopicCalls()[0].Topic, "ticket|user-1")

	// Welcome message addresses requester and staff role.
	gt.Array(t, gw.PostTicketWelcomeCalls()).Length(1)
	gt.Equal(t, gw.PostTicketWelcomeCalls()[0].Requester, alice.ID)
	gt.Equal(t, gw.PostTicketWelcomeCalls()[0].StaffRole, testStaffRole)
}

func TestCreateTicketDuplicate(t *testing.T) {
	gw := newGatewayMock()
	uc, _ := newUseCases(gw)
	ctx := t.Context()

	alice := chat.User{ID: "user-1", Name: "Alice"}

	_, err := uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)
	gt.NoError(t, err).Required()

	_, err = uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errs.ErrTicketAlreadyOpen))

	// Exactly one channel was provisioned.
	gt.Array(t, gw.CreateTicketChannelCalls()).Length(1)

	// A different category is a different ticket.
	_, err = uc.CreateTicket(ctx, testGuild, alice, types.CategorySales)
	gt.NoError(t, err)
}

func TestCreateTicketConcurrentDuplicate(t *testing.T) {
	gw := newGatewayMock()
	gw.CreateTicketChannelFunc = func(ctx context.Context, guildID types.GuildID, req chat.TicketChannelRequest) (*chat.Channel, error) {
		// Simulate the provisioning await that opened the race in the
		// check-then-act version.
		time.Sleep(5 * time.Millisecond)
		return &chat.Channel{ID: "ch-1", GuildID: guildID, Name: req.Name}, nil
	}
	uc, _ := newUseCases(gw)
	ctx := t.Context()

	alice := chat.User{ID: "user-1", Name: "Alice"}

	var wg sync.WaitGroup
	var successes, duplicates int
	var mu sync.Mutex
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateTicket(ctx, testGuild, alice, types.CategoryGeneral)
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, errs.ErrTicketAlreadyOpen) {
				duplicates++
			} else if err == nil {
				successes++
			}
		}()
	}
	wg.Wait()

	gt.Equal(t, successes, 1)
	gt.Equal(t, duplicates, 7)
	gt.Array(t, gw.CreateTicketChannelCalls()).Length(1)
}

func TestCreateTicketProvisioningFailure(t *testing.T) {
	gw := newGatewayMock()
	gw.CreateTicketChannelFunc = func(ctx context.Context, guildID types.GuildID, req chat.TicketChannelRequest) (*chat.Channel, error) {
		return nil, goerr.New("missing permissions")
	}
	uc, repo := newUseCases(gw)

	alice := chat.User{ID: "user-1", Name: "Alice"}
	_, err := uc.CreateTicket(t.Context(), testGuild, alice, types.CategoryBilling)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errs.ErrChannelProvisioning))

	// Nothing registered: the user may retry immediately.
	gt.False(t, repo.Has(ticketmodel.NewKey(testGuild, alice.ID, types.CategoryBilling)))
}

func TestCreateTicketTopicFailureTolerated(t *testing.T) {
	gw := newGatewayMock()
	gw.SetTopicFunc = func(ctx context.Context, channelID types.ChannelID, topic string) error {
		return goerr.New("topic too long")
	}
	uc, repo := newUseCases(gw)

	alice := chat.User{ID: "user-1", Name: "Alice"}
	channel, err := uc.CreateTicket(t.Context(), testGuild, alice, types.CategoryBilling)
	gt.NoError(t, err).Required()
	gt.NotNil(t, channel)
	gt.True(t, repo.Has(ticketmodel.NewKey(testGuild, alice.ID, types.CategoryBilling)))
}

func TestCreateTicketInvalidCategory(t *testing.T) {
	gw := newGatewayMock()
	uc, _ := newUseCases(gw)

	_, err := uc.CreateTicket(t.Context(), testGuild, chat.User{ID: "u", Name: "u"}, "refunds")
	gt.Error(t, err)
	gt.Array(t, gw.CreateTicketChannelCalls()).Length(0)
}

func TestAuthorizeClose(t *testing.T) {
	tests := []struct {
		name    string
		actor   types.UserID
		isStaff bool
		topic   string
		expect  bool
	}{
		{
			name:   "requester recorded in topic",
			actor:  "user-1",
			topic:  "ticket|user-1",
			expect: true,
		},
		{
			name:    "staff member",
			actor:   "user-2",
			isStaff: true,
			topic:   "ticket|user-1",
			expect:  true,
		},
		{
			name:   "outsider",
			actor:  "user-3",
			topic:  "ticket|user-1",
			expect: false,
		},
		{
			name:   "missing topic locks out non-staff requester",
			actor:  "user-1",
			topic:  "",
			expect: false,
		},
		{
			name:    "missing topic still allows staff",
			actor:   "user-2",
			isStaff: true,
			topic:   "",
			expect:  true,
		},
		{
			name:   "garbled topic locks out everyone but staff",
			actor:  "user-1",
			topic:  "welcome to support",
			expect: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw := newGatewayMock()
			gw.MemberHasRoleFunc = func(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) (bool, error) {
				gt.Equal(t, roleID, testStaffRole)
				return tc.isStaff, nil
			}
			gw.GetChannelFunc = func(ctx context.Context, channelID types.ChannelID) (*chat.Channel, error) {
				return &chat.Channel{ID: channelID, GuildID: testGuild, Name: "ticket-x", Topic: tc.topic}, nil
			}
			uc, _ := newUseCases(gw)

			got, err := uc.AuthorizeClose(t.Context(), testGuild, tc.actor, "ch-1")
			gt.NoError(t, err)
			gt.Equal(t, got, tc.expect)
		})
	}
}

func TestCloseTicketExportsBeforeDeletion(t *testing.T) {
	gw := newGatewayMock()

	var mu sync.Mutex
	var order []string
	gw.PostFileFunc = func(ctx context.Context, channelID types.ChannelID, comment, filename string, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, "export")
		gt.Equal(t, channelID, testLogCh)
		return nil
	}
	deleted := make(chan struct{})
	gw.DeleteChannelFunc = func(ctx context.Context, channelID types.ChannelID) error {
		mu.Lock()
		order = append(order, "delete")
		mu.Unlock()
		close(deleted)
		return nil
	}

	uc, repo := newUseCases(gw)
	ctx := t.Context()

	alice := chat.User{ID: "user-1", Name: "Alice"}
	channel := gt.R1(uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)).NoError(t)
	key := ticketmodel.NewKey(testGuild, alice.ID, types.CategoryBilling)

	gt.NoError(t, uc.CloseTicket(ctx, testGuild, channel.ID, true))

	// Export has completed synchronously; deletion waits for the grace
	// delay.
	mu.Lock()
	gt.Array(t, order).Equal([]string{"export"})
	mu.Unlock()
	gt.True(t, repo.Has(key))

	select {
	case <-deleted:
	case <-time.After(time.Second):
		t.Fatal("channel was not deleted after the grace delay")
	}
	uc.Shutdown(ctx)

	mu.Lock()
	gt.Array(t, order).Equal([]string{"export", "delete"})
	mu.Unlock()

	// Registry entry removed: the requester may reopen the category.
	gt.False(t, repo.Has(key))
	_, err := uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)
	gt.NoError(t, err)
}

func TestCloseTicketWithoutExport(t *testing.T) {
	gw := newGatewayMock()
	deleted := make(chan struct{})
	gw.DeleteChannelFunc = func(ctx context.Context, channelID types.ChannelID) error {
		close(deleted)
		return nil
	}
	uc, _ := newUseCases(gw)
	ctx := t.Context()

	channel := gt.R1(uc.CreateTicket(ctx, testGuild, chat.User{ID: "user-1", Name: "Alice"}, types.CategoryBilling)).NoError(t)
	gt.NoError(t, uc.CloseTicket(ctx, testGuild, channel.ID, false))

	select {
	case <-deleted:
	case <-time.After(time.Second):
		t.Fatal("channel was not deleted")
	}
	uc.Shutdown(ctx)

	gt.Array(t, gw.PostFileCalls()).Length(0)
}

func TestCloseTicketExportFailureDoesNotBlockClose(t *testing.T) {
	gw := newGatewayMock()
	gw.FetchMessagePageFunc = func(ctx context.Context, channelID types.ChannelID, limit int, before types.MessageID) ([]*chat.Message, error) {
		return nil, goerr.New("history unavailable")
	}
	deleted := make(chan struct{})
	gw.DeleteChannelFunc = func(ctx context.Context, channelID types.ChannelID) error {
		close(deleted)
		return nil
	}
	uc, _ := newUseCases(gw)
	ctx := t.Context()

	channel := gt.R1(uc.CreateTicket(ctx, testGuild, chat.User{ID: "user-1", Name: "Alice"}, types.CategoryBilling)).NoError(t)
	gt.NoError(t, uc.CloseTicket(ctx, testGuild, channel.ID, true))

	select {
	case <-deleted:
	case <-time.After(time.Second):
		t.Fatal("channel was not deleted despite export failure")
	}
	uc.Shutdown(ctx)
}

func TestCloseTicketDeletionFailureStillClearsRegistry(t *testing.T) {
	gw := newGatewayMock()
	deleted := make(chan struct{})
	gw.DeleteChannelFunc = func(ctx context.Context, channelID types.ChannelID) error {
		defer close(deleted)
		return goerr.New("missing permissions")
	}
	uc, repo := newUseCases(gw)
	ctx := t.Context()

	alice := chat.User{ID: "user-1", Name: "Alice"}
	channel := gt.R1(uc.CreateTicket(ctx, testGuild, alice, types.CategoryBilling)).NoError(t)
	gt.NoError(t, uc.CloseTicket(ctx, testGuild, channel.ID, false))

	select {
	case <-deleted:
	case <-time.After(time.Second):
		t.Fatal("deletion was not attempted")
	}
	uc.Shutdown(ctx)

	gt.False(t, repo.Has(ticketmodel.NewKey(testGuild, alice.ID, types.CategoryBilling)))
}

func TestShutdownCancelsPendingDeletion(t *testing.T) {
	gw := newGatewayMock()
	var deletes int
	var mu sync.Mutex
	gw.DeleteChannelFunc = func(ctx context.Context, channelID types.ChannelID) error {
		mu.Lock()
		defer mu.Unlock()
		deletes++
		return nil
	}
	uc, _ := newUseCases(gw, usecase.WithCloseDelay(time.Hour))
	ctx := t.Context()

	channel := gt.R1(uc.CreateTicket(ctx, testGuild, chat.User{ID: "user-1", Name: "Alice"}, types.CategoryBilling)).NoError(t)
	gt.NoError(t, uc.CloseTicket(ctx, testGuild, channel.ID, false))

	uc.Shutdown(ctx)

	mu.Lock()
	gt.Equal(t, deletes, 0)
	mu.Unlock()
}

func TestExportTranscriptOnDemand(t *testing.T) {
	gw := newGatewayMock()
	uc, _ := newUseCases(gw)
	ctx := t.Context()

	channel := gt.R1(uc.CreateTicket(ctx, testGuild, chat.User{ID: "user-1", Name: "Alice"}, types.CategoryBilling)).NoError(t)

	result := gt.R1(uc.ExportTranscript(ctx, testGuild, channel.ID)).NoError(t)
	gt.True(t, result.Delivered())
	gt.Equal(t, result.LogChannel, testLogCh)
	gt.Array(t, gw.PostFileCalls()).Length(1)
}
