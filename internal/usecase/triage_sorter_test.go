package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_arq/internal/domain/entities"
	mock_interfaces "studio_arq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func triageTicket(id string, status entities.TicketStatus, createdAt time.Time) entities.Ticket {
	return entities.Ticket{ID: id, Status: status, CreatedAt: createdAt, UpdatedAt: createdAt}
}

func scheduledTicket(id string, status entities.TicketStatus, createdAt, day time.Time, hour, minute int) entities.Ticket {
	t := triageTicket(id, status, createdAt)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	t.ScheduledDate = &date
	t.ScheduledTime = &at
	return t
}

func TestSortTickets(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending always precede non-pending", func(t *testing.T) {
		tickets := []entities.Ticket{
			triageTicket("a", entities.TicketStatusCompleted, base.Add(3*time.Hour)),
			triageTicket("b", entities.TicketStatusPending, base),
			triageTicket("c", entities.TicketStatusCancelled, base.Add(5*time.Hour)),
			triageTicket("d", entities.TicketStatusPending, base.Add(time.Hour)),
			triageTicket("e", entities.TicketStatusInProgress, base.Add(2*time.Hour)),
		}
		sorted := SortTickets(tickets, now)
		seenNonPending := false
		for _, tk := range sorted {
			if tk.Status != entities.TicketStatusPending {
				seenNonPending = true
			} else if seenNonPending {
				t.Fatalf("pending ticket %s after non-pending: %+v", tk.ID, sorted)
			}
		}
	})

	t.Run("urgent pending sort first ascending by time", func(t *testing.T) {
		tickets := []entities.Ticket{
			triageTicket("recent", entities.TicketStatusPending, base.Add(48*time.Hour)),
			scheduledTicket("nine", entities.TicketStatusPending, base, now, 9, 0),
			scheduledTicket("eight50", entities.TicketStatusPending, base.Add(time.Hour), now, 8, 50),
			scheduledTicket("late", entities.TicketStatusPending, base.Add(72*time.Hour), now, 16, 0),
		}
		sorted := SortTickets(tickets, now)
		want := []string{"eight50", "nine", "late", "recent"}
		for i, id := range want {
			if sorted[i].ID != id {
				t.Fatalf("position %d: expected %s got %s (%+v)", i, id, sorted[i].ID, sorted)
			}
		}
	})

	t.Run("scheduled tomorrow is not urgent", func(t *testing.T) {
		tomorrow := now.Add(24 * time.Hour)
		tk := scheduledTicket("t", entities.TicketStatusPending, base, tomorrow, 8, 50)
		if IsUrgent(tk, now) {
			t.Fatalf("ticket scheduled tomorrow must not be urgent")
		}
	})

	t.Run("unscheduled pending is never urgent", func(t *testing.T) {
		tk := triageTicket("u", entities.TicketStatusPending, base)
		if IsUrgent(tk, now) {
			t.Fatalf("unscheduled ticket must not be urgent")
		}
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		tk.ScheduledDate = &date
		if IsUrgent(tk, now) {
			t.Fatalf("ticket without scheduled time must not be urgent")
		}
	})

	t.Run("non-urgent pending sort by created-at descending", func(t *testing.T) {
		tickets := []entities.Ticket{
			triageTicket("old", entities.TicketStatusPending, base),
			triageTicket("new", entities.TicketStatusPending, base.Add(2*time.Hour)),
			triageTicket("mid", entities.TicketStatusPending, base.Add(time.Hour)),
		}
		sorted := SortTickets(tickets, now)
		want := []string{"new", "mid", "old"}
		for i, id := range want {
			if sorted[i].ID != id {
				t.Fatalf("position %d: expected %s got %s", i, id, sorted[i].ID)
			}
		}
	})

	t.Run("ties break by id for determinism", func(t *testing.T) {
		tickets := []entities.Ticket{
			triageTicket("b", entities.TicketStatusPending, base),
			triageTicket("a", entities.TicketStatusPending, base),
		}
		sorted := SortTickets(tickets, now)
		if sorted[0].ID != "a" || sorted[1].ID != "b" {
			t.Fatalf("expected [a b], got [%s %s]", sorted[0].ID, sorted[1].ID)
		}
		reversed := SortTickets([]entities.Ticket{tickets[1], tickets[0]}, now)
		if reversed[0].ID != "a" || reversed[1].ID != "b" {
			t.Fatalf("order must not depend on input order")
		}
	})

	t.Run("scenario: urgent, unscheduled pending, completed", func(t *testing.T) {
		tickets := []entities.Ticket{
			scheduledTicket("1", entities.TicketStatusPending, base, now, 9, 0),
			triageTicket("2", entities.TicketStatusPending, base.Add(time.Hour)),
			triageTicket("3", entities.TicketStatusCompleted, base.Add(2*time.Hour)),
		}
		sorted := SortTickets(tickets, now)
		want := []string{"1", "2", "3"}
		for i, id := range want {
			if sorted[i].ID != id {
				t.Fatalf("position %d: expected %s got %s", i, id, sorted[i].ID)
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		tickets := []entities.Ticket{
			triageTicket("z", entities.TicketStatusCompleted, base),
			triageTicket("a", entities.TicketStatusPending, base),
		}
		_ = SortTickets(tickets, now)
		if tickets[0].ID != "z" || tickets[1].ID != "a" {
			t.Fatalf("SortTickets must not reorder its input")
		}
	})
}

func TestTicketTriageUseCase_ListTriage(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()
		uc := NewTicketTriageUseCase(repo, clock)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListTriage(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("fetches once and serves the derived view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()
		uc := NewTicketTriageUseCase(repo, clock)

		tickets := []entities.Ticket{
			triageTicket("done", entities.TicketStatusCompleted, base.Add(time.Hour)),
			triageTicket("open", entities.TicketStatusPending, base),
		}
		repo.EXPECT().List(gomock.Any()).Return(tickets, nil).Times(1)

		first, err := uc.ListTriage(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first[0].ID != "open" || first[1].ID != "done" {
			t.Fatalf("unexpected order: %+v", first)
		}

		second, err := uc.ListTriage(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(second) != 2 {
			t.Fatalf("expected 2 tickets, got %d", len(second))
		}
	})

	t.Run("status change re-sorts without a re-fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()
		uc := NewTicketTriageUseCase(repo, clock)

		tickets := []entities.Ticket{
			triageTicket("a", entities.TicketStatusPending, base),
			triageTicket("b", entities.TicketStatusPending, base.Add(time.Hour)),
		}
		repo.EXPECT().List(gomock.Any()).Return(tickets, nil).Times(1)

		if _, err := uc.ListTriage(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		completed := triageTicket("b", entities.TicketStatusCompleted, base.Add(time.Hour))
		repo.EXPECT().UpdateStatus(gomock.Any(), "b", entities.TicketStatusCompleted).Return(completed, nil)

		if _, err := uc.UpdateStatus(context.Background(), "b", entities.TicketStatusCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sorted, err := uc.ListTriage(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sorted[0].ID != "a" || sorted[1].ID != "b" {
			t.Fatalf("expected completed ticket to trail, got %+v", sorted)
		}
	})
}

func TestTicketTriageUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewTicketTriageUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "   ", entities.TicketStatusPending)
		if !errors.Is(err, ErrInvalidTicketID) {
			t.Fatalf("expected ErrInvalidTicketID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewTicketTriageUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "t-1", entities.TicketStatus("paused"))
		if !errors.Is(err, ErrInvalidTicketStatus) {
			t.Fatalf("expected ErrInvalidTicketStatus, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketTriageUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusCompleted).Return(entities.Ticket{}, errors.New("db"))

		_, err := uc.UpdateStatus(context.Background(), "t-1", entities.TicketStatusCompleted)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketTriageUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusCompleted).Return(entities.Ticket{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "t-1", entities.TicketStatusCompleted)
		if !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketTriageUseCase(repo, nil)
		expected := entities.Ticket{ID: "t-1", Status: entities.TicketStatusInProgress}
		repo.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusInProgress).Return(expected, nil)

		res, err := uc.UpdateStatus(context.Background(), " t-1 ", entities.TicketStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TicketStatusInProgress {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
