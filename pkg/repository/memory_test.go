package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/pixel-node/helpdesk/pkg/domain/model/ticket"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/repository"
)

func newTestTicket(category types.Category, channelID types.ChannelID) *ticket.Ticket {
	key := ticket.NewKey("guild-1", "user-1", category)
	return ticket.New(key, channelID, time.Now())
}

func TestMemoryPutHasRemove(t *testing.T) {
	repo := repository.NewMemory()
	tk := newTestTicket(types.CategoryBilling, "ch-1")

	gt.False(t, repo.Has(tk.Key))

	repo.Put(tk)
	gt.True(t, repo.Has(tk.Key))

	// Put is idempotent
	repo.Put(tk)
	gt.True(t, repo.Has(tk.Key))

	repo.Remove(tk.Key)
	gt.False(t, repo.Has(tk.Key))

	// Remove of an absent key is a no-op
	repo.Remove(tk.Key)
	gt.False(t, repo.Has(tk.Key))
}

func TestMemoryChannelIndex(t *testing.T) {
	repo := repository.NewMemory()
	tk := newTestTicket(types.CategoryTechnical, "ch-2")
	repo.Put(tk)

	got := repo.GetByChannel("ch-2")
	gt.NotNil(t, got)
	gt.Equal(t, got.Key, tk.Key)

	gt.Nil(t, repo.GetByChannel("ch-unknown"))

	repo.RemoveByChannel("ch-2")
	gt.False(t, repo.Has(tk.Key))
	gt.Nil(t, repo.GetByChannel("ch-2"))
}

func TestMemoryKeysAreIndependent(t *testing.T) {
	repo := repository.NewMemory()
	billing := newTestTicket(types.CategoryBilling, "ch-b")
	sales := newTestTicket(types.CategorySales, "ch-s")

	repo.Put(billing)
	repo.Put(sales)
	repo.Remove(billing.Key)

	gt.False(t, repo.Has(billing.Key))
	gt.True(t, repo.Has(sales.Key))
}

func TestLockKeySerializesCreation(t *testing.T) {
	repo := repository.NewMemory()
	key := ticket.NewKey("guild-1", "user-1", types.CategoryGeneral)

	var created int
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := repo.LockKey(key)
			defer unlock()

			if repo.Has(key) {
				return
			}
			// Simulate the provisioning await inside the critical section.
			time.Sleep(time.Millisecond)
			repo.Put(ticket.New(key, "ch-x", time.Now()))
			created++
		}()
	}
	wg.Wait()

	gt.Equal(t, created, 1)
	gt.True(t, repo.Has(key))
}

func TestLockKeyDistinctKeysDoNotBlock(t *testing.T) {
	repo := repository.NewMemory()
	k1 := ticket.NewKey("g", "u", types.CategoryBilling)
	k2 := ticket.NewKey("g", "u", types.CategorySales)

	unlock1 := repo.LockKey(k1)
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := repo.LockKey(k2)
		unlock2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}
