package repository

import (
	"sync"

	"github.com/pixel-node/helpdesk/pkg/domain/interfaces"
	"github.com/pixel-node/helpdesk/pkg/domain/model/ticket"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

// Memory tracks open tickets in process memory. Entries live from successful
// channel provisioning until channel deletion; nothing survives a restart.
type Memory struct {
	mu        sync.RWMutex
	tickets   map[ticket.Key]*ticket.Ticket
	byChannel map[types.ChannelID]ticket.Key

	keyMu    sync.Mutex
	keyLocks map[ticket.Key]*sync.Mutex
}

var _ interfaces.TicketRepository = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		tickets:   make(map[ticket.Key]*ticket.Ticket),
		byChannel: make(map[types.ChannelID]ticket.Key),
		keyLocks:  make(map[ticket.Key]*sync.Mutex),
	}
}

func (r *Memory) Has(key ticket.Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tickets[key]
	return ok
}

// Put inserts or updates a ticket. Idempotent for the same key.
func (r *Memory) Put(t *ticket.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.tickets[t.Key]; ok && prev.ChannelID != t.ChannelID {
		delete(r.byChannel, prev.ChannelID)
	}
	r.tickets[t.Key] = t
	r.byChannel[t.ChannelID] = t.Key
}

// Remove deletes a ticket by key. No-op if absent.
func (r *Memory) Remove(key ticket.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tickets[key]; ok {
		delete(r.byChannel, t.ChannelID)
		delete(r.tickets, key)
	}
}

func (r *Memory) GetByChannel(channelID types.ChannelID) *ticket.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.byChannel[channelID]
	if !ok {
		return nil
	}
	return r.tickets[key]
}

func (r *Memory) RemoveByChannel(channelID types.ChannelID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key, ok := r.byChannel[channelID]; ok {
		delete(r.tickets, key)
		delete(r.byChannel, channelID)
	}
}

// LockKey acquires the per-key creation lock and returns its release func.
// Holding it across the check-provision-register span prevents two
// concurrent selections from both passing the duplicate check.
func (r *Memory) LockKey(key ticket.Key) func() {
	r.keyMu.Lock()
	lock, ok := r.keyLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.keyLocks[key] = lock
	}
	r.keyMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
