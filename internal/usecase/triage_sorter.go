package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketID     = errors.New("invalid ticket id")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)

// urgencyWindow is how far ahead of "now" a scheduled visit still counts as
// urgent.
const urgencyWindow = 30 * time.Minute

// ITicketTriageUseCase exposes the triage view and status changes.
//
// The triage order is a derived view: it is recomputed from the canonical
// ticket cache only when the cache version moves (or the clock crosses a
// minute boundary, since urgency is time-dependent). A single status change
// therefore re-sorts without a re-fetch.

type ITicketTriageUseCase interface {
	ListTriage(ctx context.Context) ([]entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
}

type TicketTriageUseCase struct {
	repo  interfaces.ITicketRepository
	clock interfaces.IClock

	mu      sync.Mutex
	tickets map[string]entities.Ticket
	loaded  bool
	version uint64

	sorted        []entities.Ticket
	sortedVersion uint64
	sortedMinute  time.Time
}

var _ ITicketTriageUseCase = (*TicketTriageUseCase)(nil)

func NewTicketTriageUseCase(repo interfaces.ITicketRepository, clock interfaces.IClock) *TicketTriageUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &TicketTriageUseCase{repo: repo, clock: clock}
}

func (u *TicketTriageUseCase) ListTriage(ctx context.Context) ([]entities.Ticket, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.loaded {
		fetched, err := u.repo.List(ctx)
		if err != nil {
			log.Printf("[triage][usecase] list failed err=%v", err)
			return nil, err
		}
		u.tickets = make(map[string]entities.Ticket, len(fetched))
		for _, t := range fetched {
			u.tickets[t.ID] = t
		}
		u.loaded = true
		u.version++
		log.Printf("[triage][usecase] cache primed tickets=%d version=%d", len(fetched), u.version)
	}

	now := u.clock.Now()
	minute := now.Truncate(time.Minute)
	if u.sorted == nil || u.sortedVersion != u.version || !u.sortedMinute.Equal(minute) {
		all := make([]entities.Ticket, 0, len(u.tickets))
		for _, t := range u.tickets {
			all = append(all, t)
		}
		u.sorted = SortTickets(all, now)
		u.sortedVersion = u.version
		u.sortedMinute = minute
	}

	out := make([]entities.Ticket, len(u.sorted))
	copy(out, u.sorted)
	return out, nil
}

func (u *TicketTriageUseCase) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	if !status.Valid() {
		return entities.Ticket{}, ErrInvalidTicketStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Printf("[triage][usecase] update-status failed ticket_id=%s err=%v", id, err)
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}

	u.mu.Lock()
	if u.loaded {
		u.tickets[updated.ID] = updated
		u.version++
	}
	u.mu.Unlock()
	log.Printf("[triage][usecase] update-status success ticket_id=%s status=%s", id, status)
	return updated, nil
}

// SortTickets returns tickets in triage display order. The order is total and
// stable across repeated calls:
//
//  1. Pending tickets come before everything else.
//  2. Within pending, urgent tickets (scheduled for today, at most 30 minutes
//     from now) come first, ascending by scheduled time.
//  3. Remaining pending tickets follow, newest created first.
//  4. All non-pending tickets trail as one bucket, newest created first.
//
// Ties break by created-at descending, then by id, so the result is
// deterministic for any input order.
func SortTickets(tickets []entities.Ticket, now time.Time) []entities.Ticket {
	out := make([]entities.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return triageLess(out[i], out[j], now)
	})
	return out
}

// IsUrgent reports whether a pending ticket is scheduled for today with a
// time at most urgencyWindow ahead of now. Tickets without a scheduled time
// are never urgent.
func IsUrgent(t entities.Ticket, now time.Time) bool {
	if t.Status != entities.TicketStatusPending {
		return false
	}
	at, ok := t.ScheduledAt()
	if !ok {
		return false
	}
	if !sameDay(*t.ScheduledDate, now) {
		return false
	}
	return !at.After(now.Add(urgencyWindow))
}

func triageLess(a, b entities.Ticket, now time.Time) bool {
	ra, rb := triageRank(a, now), triageRank(b, now)
	if ra != rb {
		return ra < rb
	}
	if ra == 0 {
		atA, _ := a.ScheduledAt()
		atB, _ := b.ScheduledAt()
		if !atA.Equal(atB) {
			return atA.Before(atB)
		}
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

// triageRank buckets a ticket: 0 urgent pending, 1 other pending, 2 the rest.
func triageRank(t entities.Ticket, now time.Time) int {
	if t.Status != entities.TicketStatusPending {
		return 2
	}
	if IsUrgent(t, now) {
		return 0
	}
	return 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
