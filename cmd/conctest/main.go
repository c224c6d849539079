// Command conctest fires concurrent reservations and ticket purchases at a
// live MongoDB and checks that no counter ends above its capacity.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"eventhub-backend/database"
	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/qrpayload"
	"eventhub-backend/internal/repository"
	"eventhub-backend/internal/services"
)

func main() {
	users := flag.Int("users", 50, "concurrent callers per scenario")
	capacity := flag.Int("capacity", 5, "resource and ticket type capacity")
	flag.Parse()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := database.ConnectMongo(ctx, uri)
	if err != nil {
		log.Fatalf("ConnectMongo: %v", err)
	}
	defer database.Disconnect(client, 5*time.Second)

	testDB := client.Database(fmt.Sprintf("conctest_%d", time.Now().UnixNano()))
	defer func() {
		if err := testDB.Drop(context.Background()); err != nil {
			log.Printf("drop %s: %v", testDB.Name(), err)
		}
	}()

	clk := clock.System()
	events := repository.NewMongoEventStore(testDB, clk)
	catalog := services.NewCatalogService(events, clk)
	resources := services.NewResourceService(events)
	enc, err := qrpayload.NewSealedEncoder("conctest")
	if err != nil {
		log.Fatalf("encoder: %v", err)
	}
	tickets := services.NewTicketService(events, repository.NewMongoTicketStore(testDB), enc, clk)

	start := time.Now().Add(24 * time.Hour).UTC()
	ev, err := catalog.CreateEvent(ctx, "conctest-organizer", models.EventInput{
		Title:     "Capacity Stress Test",
		Type:      "test",
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
	})
	if err != nil {
		log.Fatalf("CreateEvent: %v", err)
	}
	eventID := ev.ID.Hex()

	rs, err := resources.Upsert(ctx, eventID, models.Resource{Name: "Chairs", Quantity: *capacity})
	if err != nil {
		log.Fatalf("Upsert resource: %v", err)
	}
	tt, err := catalog.UpsertTicketType(ctx, eventID, models.EventTicket{Name: "General", Quantity: *capacity, Price: 10})
	if err != nil {
		log.Fatalf("Upsert ticket type: %v", err)
	}
	if err := catalog.PublishEvent(ctx, eventID); err != nil {
		log.Fatalf("PublishEvent: %v", err)
	}

	fmt.Println("═══════════════════════════════════════════")
	fmt.Println("  Event Hub: Concurrency Stress Test")
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("Event ID : %s\n", eventID)
	fmt.Printf("Capacity : %d\n\n", *capacity)

	pass := true
	pass = run("reserve", *users, *capacity, func(int) error {
		_, err := resources.IncrementReserved(ctx, eventID, rs[0].ID, 1)
		return err
	}) && pass
	pass = run("purchase", *users, *capacity, func(n int) error {
		_, err := tickets.Issue(ctx, services.IssueInput{
			UserID:       fmt.Sprintf("user-%02d", n),
			EventID:      eventID,
			TicketTypeID: tt[0].ID,
			Quantity:     1,
		})
		return err
	}) && pass

	final, err := events.Load(ctx, ev.ID, models.ProjectFull)
	if err != nil {
		log.Fatalf("Load: %v", err)
	}
	fmt.Printf("\nMongoDB final state  →  reserved=%d/%d  sold=%d/%d\n",
		final.Resources[0].Reserved, final.Resources[0].Quantity,
		final.Tickets[0].Sold, final.Tickets[0].Quantity)

	if !pass {
		os.Exit(1)
	}
}

func run(name string, users, capacity int, attempt func(n int) error) bool {
	var (
		wg       sync.WaitGroup
		ok, full atomic.Int64
	)
	start := time.Now()

	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := attempt(n)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, models.ErrCapacityExceeded):
				full.Add(1)
			default:
				fmt.Printf("  %s %02d  ❌  %v\n", name, n+1, err)
			}
		}(i)
	}
	wg.Wait()

	fmt.Printf("[%s] attempts=%d ok=%d full=%d in %s\n", name, users, ok.Load(), full.Load(), time.Since(start))
	want := int64(min(users, capacity))
	if ok.Load() != want {
		fmt.Printf("❌  FAIL: expected %d successes, got %d\n", want, ok.Load())
		return false
	}
	fmt.Printf("✅  PASS: exactly %d succeeded (no overbooking)\n", want)
	return true
}
