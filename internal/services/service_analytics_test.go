package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

type fakeOrganizerEvents struct {
	events []models.Event
	err    error
	gotW   *models.Window
}

func (f *fakeOrganizerEvents) ListForOrganizer(_ context.Context, _ string, w *models.Window) ([]models.Event, error) {
	f.gotW = w
	return f.events, f.err
}

// oid builds ObjectIDs whose hex order follows n.
func oid(n byte) bson.ObjectID {
	var id bson.ObjectID
	id[11] = n
	return id
}

func TestAnalyticsService_Rollup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("single event totals", func(t *testing.T) {
		src := &fakeOrganizerEvents{events: []models.Event{{
			ID:        oid(1),
			StartDate: day(2025, 6, 1),
			Tickets:   []models.EventTicket{{ID: "t1", Quantity: 100, Sold: 40, Price: 20}},
			Resources: []models.Resource{{ID: "r1", Quantity: 10, Reserved: 4, Price: 5}},
		}}}
		svc := NewAnalyticsService(src)

		got, err := svc.OrganizerRollup(ctx, "org-1", nil)
		if err != nil {
			t.Fatal(err)
		}
		tot := got.Totals
		if tot.TicketRevenue != 800 || tot.ResourceRevenue != 20 || tot.Revenue != 820 || tot.EventCount != 1 {
			t.Fatalf("unexpected totals %+v", tot)
		}
		if tot.TicketsSold != 40 || tot.ResourcesReserved != 4 {
			t.Fatalf("unexpected counters %+v", tot)
		}
		if len(got.Monthly) != 1 || got.Monthly[0].Month != "2025-06" || got.Monthly[0].TotalRevenue != 820 {
			t.Fatalf("unexpected monthly series %+v", got.Monthly)
		}
	})

	t.Run("rankings break ties by ascending id", func(t *testing.T) {
		src := &fakeOrganizerEvents{events: []models.Event{
			{ID: oid(3), StartDate: day(2025, 6, 1), Tickets: []models.EventTicket{{ID: "b", Sold: 10, Price: 10}}},
			{ID: oid(1), StartDate: day(2025, 6, 2), Tickets: []models.EventTicket{{ID: "a", Sold: 10, Price: 10}}},
			{ID: oid(2), StartDate: day(2025, 6, 3), Tickets: []models.EventTicket{{ID: "c", Sold: 20, Price: 1}}},
			{ID: oid(4), StartDate: day(2025, 6, 4), Tickets: []models.EventTicket{{ID: "d", Sold: 1, Price: 500}}},
		}}
		svc := NewAnalyticsService(src, WithTopN(3))

		got, err := svc.OrganizerRollup(ctx, "org-1", nil)
		if err != nil {
			t.Fatal(err)
		}

		wantRevenue := []bson.ObjectID{oid(4), oid(1), oid(3)}
		if len(got.TopEventsByRevenue) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(got.TopEventsByRevenue))
		}
		for i, id := range wantRevenue {
			if got.TopEventsByRevenue[i].EventID != id.Hex() {
				t.Fatalf("revenue rank %d: expected %s, got %s", i, id.Hex(), got.TopEventsByRevenue[i].EventID)
			}
		}

		wantSold := []bson.ObjectID{oid(2), oid(1), oid(3)}
		for i, id := range wantSold {
			if got.TopEventsByTickets[i].EventID != id.Hex() {
				t.Fatalf("sold rank %d: expected %s, got %s", i, id.Hex(), got.TopEventsByTickets[i].EventID)
			}
		}

		wantTypes := []string{"d", "a", "b"}
		for i, id := range wantTypes {
			if got.TopTicketTypes[i].TicketTypeID != id {
				t.Fatalf("ticket type rank %d: expected %s, got %s", i, id, got.TopTicketTypes[i].TicketTypeID)
			}
		}
		if len(got.Events) != 4 {
			t.Fatalf("expected the full breakdown of 4 events, got %d", len(got.Events))
		}
	})

	t.Run("monthly series is sparse and ascending", func(t *testing.T) {
		src := &fakeOrganizerEvents{events: []models.Event{
			{ID: oid(1), StartDate: day(2025, 9, 10), Tickets: []models.EventTicket{{ID: "x", Sold: 1, Price: 1}}},
			{ID: oid(2), StartDate: day(2025, 1, 5), Tickets: []models.EventTicket{{ID: "x", Sold: 2, Price: 1}}},
			{ID: oid(3), StartDate: day(2025, 9, 20), Tickets: []models.EventTicket{{ID: "x", Sold: 3, Price: 1}}},
		}}
		got, err := NewAnalyticsService(src).OrganizerRollup(ctx, "org-1", nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Monthly) != 2 {
			t.Fatalf("expected 2 months, got %+v", got.Monthly)
		}
		if got.Monthly[0].Month != "2025-01" || got.Monthly[1].Month != "2025-09" {
			t.Fatalf("unexpected month order %+v", got.Monthly)
		}
		if got.Monthly[1].TicketRevenue != 4 || got.Monthly[1].EventCount != 2 {
			t.Fatalf("unexpected September bucket %+v", got.Monthly[1])
		}
	})

	t.Run("groups resource revenue by supplier", func(t *testing.T) {
		src := &fakeOrganizerEvents{events: []models.Event{
			{ID: oid(1), Resources: []models.Resource{
				{ID: "r1", SupplierID: "sup-b", Reserved: 2, Price: 10},
				{ID: "r2", SupplierID: "sup-a", Reserved: 1, Price: 20},
			}},
			{ID: oid(2), Resources: []models.Resource{
				{ID: "r3", SupplierID: "sup-c", Reserved: 1, Price: 50},
				{ID: "r4", Reserved: 1, Price: 1},
			}},
		}}
		got, err := NewAnalyticsService(src).OrganizerRollup(ctx, "org-1", nil)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"sup-c", "sup-a", "sup-b", ""}
		if len(got.BySupplier) != len(want) {
			t.Fatalf("expected %d suppliers, got %+v", len(want), got.BySupplier)
		}
		for i, id := range want {
			if got.BySupplier[i].SupplierID != id {
				t.Fatalf("supplier %d: expected %q, got %q", i, id, got.BySupplier[i].SupplierID)
			}
		}
		if got.TopResources[0].ResourceID != "r3" {
			t.Fatalf("expected r3 on top, got %s", got.TopResources[0].ResourceID)
		}
	})

	t.Run("empty organizer", func(t *testing.T) {
		got, err := NewAnalyticsService(&fakeOrganizerEvents{}).OrganizerRollup(ctx, "org-1", nil)
		if err != nil {
			t.Fatal(err)
		}
		if got.Totals.EventCount != 0 || len(got.TopEventsByRevenue) != 0 || got.Monthly == nil || got.BySupplier == nil {
			t.Fatalf("unexpected empty rollup %+v", got)
		}
	})

	t.Run("passes window and errors through", func(t *testing.T) {
		w := &models.Window{From: day(2025, 1, 1)}
		src := &fakeOrganizerEvents{err: models.ErrStoreUnavailable}
		_, err := NewAnalyticsService(src).OrganizerRollup(ctx, "org-1", w)
		if !errors.Is(err, models.ErrStoreUnavailable) {
			t.Fatalf("expected store error, got %v", err)
		}
		if src.gotW != w {
			t.Fatalf("window not forwarded")
		}
	})
}

func TestTopN(t *testing.T) {
	t.Parallel()

	top := newTopN(3, func(a, b int) bool { return a > b })
	for _, v := range []int{5, 1, 9, 7, 3, 8} {
		top.offer(v)
	}
	got := top.items()
	want := []int{9, 8, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
