package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/models"
)

const (
	EventsCollection  = "events"
	TicketsCollection = "tickets"
)

type MongoEventStore struct {
	col   *mongo.Collection
	clock clock.Clock
}

func NewMongoEventStore(db *mongo.Database, clk clock.Clock) *MongoEventStore {
	return &MongoEventStore{
		col:   db.Collection(EventsCollection),
		clock: clk,
	}
}

func (s *MongoEventStore) Insert(ctx context.Context, ev *models.Event) error {
	if ev.ID.IsZero() {
		ev.ID = bson.NewObjectID()
	}
	normalizeArrays(ev)
	if _, err := s.col.InsertOne(ctx, ev); err != nil {
		return storeErr("insert event", err)
	}
	return nil
}

func (s *MongoEventStore) Load(ctx context.Context, id bson.ObjectID, proj models.Projection) (*models.Event, error) {
	opts := options.FindOne()
	if doc := projectionDoc(proj); doc != nil {
		opts.SetProjection(doc)
	}

	var ev models.Event
	err := s.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrEventNotFound
		}
		return nil, storeErr("load event", err)
	}
	return &ev, nil
}

func (s *MongoEventStore) ReplaceWhole(ctx context.Context, id bson.ObjectID, ev *models.Event) error {
	ev.ID = id
	ev.UpdatedAt = s.clock.Now()
	normalizeArrays(ev)

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, ev)
	if err != nil {
		return storeErr("replace event", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

func (s *MongoEventStore) ApplyFieldUpdate(ctx context.Context, id bson.ObjectID, set FieldUpdate) (int64, error) {
	doc := bson.M{"updated_at": s.clock.Now()}
	for k, v := range set {
		doc[k] = v
	}
	return s.updateOne(ctx, "update event fields", bson.M{"_id": id}, bson.M{"$set": doc})
}

func (s *MongoEventStore) TransitionStatus(ctx context.Context, id bson.ObjectID, from []models.EventStatus, to models.EventStatus) (int64, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$in": from}}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": s.clock.Now()}}
	return s.updateOne(ctx, "transition event status", filter, update)
}

func (s *MongoEventStore) PushArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elem any) (int64, error) {
	update := bson.M{
		"$push": bson.M{string(field): elem},
		"$set":  bson.M{"updated_at": s.clock.Now()},
	}
	return s.updateOne(ctx, "push "+string(field), bson.M{"_id": id}, update)
}

func (s *MongoEventStore) ApplyArrayElementUpdate(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, elem any, keep *models.CounterGuard) (int64, error) {
	raw, err := bson.Marshal(elem)
	if err != nil {
		return 0, fmt.Errorf("encode %s element: %w", field, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("encode %s element: %w", field, err)
	}

	set := bson.M{"updated_at": s.clock.Now()}
	match := bson.M{"_id": elemID}
	for k, v := range doc {
		if k == "_id" || (keep != nil && k == keep.Counter) {
			continue
		}
		set[string(field)+".$."+k] = v
	}
	if keep != nil {
		match[keep.Counter] = bson.M{"$lte": doc[keep.Capacity]}
	}

	filter := bson.M{"_id": id, string(field): bson.M{"$elemMatch": match}}
	return s.updateOne(ctx, "update "+string(field)+" element", filter, bson.M{"$set": set})
}

func (s *MongoEventStore) PullArrayElement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string) (int64, error) {
	filter := bson.M{"_id": id, string(field) + "._id": elemID}
	update := bson.M{
		"$pull": bson.M{string(field): bson.M{"_id": elemID}},
		"$set":  bson.M{"updated_at": s.clock.Now()},
	}
	return s.updateOne(ctx, "pull "+string(field)+" element", filter, update)
}

// ApplyAtomicIncrement puts the capacity guard in the filter as an $expr over
// the array, so the server evaluates it against the same document version
// the $inc is applied to.
func (s *MongoEventStore) ApplyAtomicIncrement(ctx context.Context, id bson.ObjectID, field models.ArrayField, elemID string, delta int, guard models.CounterGuard) (int64, error) {
	counter := "$$e." + guard.Counter
	capacity := "$$e." + guard.Capacity
	next := bson.M{"$add": bson.A{counter, delta}}

	filter := bson.M{
		"_id": id,
		"$expr": bson.M{"$gt": bson.A{
			bson.M{"$size": bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$" + string(field), bson.A{}}},
				"as":    "e",
				"cond": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$$e._id", elemID}},
					bson.M{"$lte": bson.A{next, capacity}},
					bson.M{"$gte": bson.A{next, 0}},
				}},
			}}},
			0,
		}},
	}
	update := bson.M{
		"$inc": bson.M{string(field) + ".$[e]." + guard.Counter: delta},
		"$set": bson.M{"updated_at": s.clock.Now()},
	}
	opts := options.UpdateOne().SetArrayFilters([]any{bson.M{"e._id": elemID}})

	res, err := s.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, storeErr("guarded increment "+string(field)+"."+guard.Counter, err)
	}
	return res.MatchedCount, nil
}

func (s *MongoEventStore) Find(ctx context.Context, f EventFilter, proj models.Projection, skip, limit int64) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "start_date", Value: 1},
		{Key: "_id", Value: 1},
	})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if doc := projectionDoc(proj); doc != nil {
		opts.SetProjection(doc)
	}

	cur, err := s.col.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, storeErr("find events", err)
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, storeErr("decode events", err)
	}
	return events, nil
}

func (s *MongoEventStore) Count(ctx context.Context, f EventFilter) (int64, error) {
	n, err := s.col.CountDocuments(ctx, f.bson())
	if err != nil {
		return 0, storeErr("count events", err)
	}
	return n, nil
}

func (s *MongoEventStore) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, storeErr("delete event", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoEventStore) updateOne(ctx context.Context, op string, filter, update bson.M) (int64, error) {
	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, storeErr(op, err)
	}
	return res.MatchedCount, nil
}

func (f EventFilter) bson() bson.M {
	m := bson.M{}
	if f.OrganizerID != "" {
		m["organizer_id"] = f.OrganizerID
	}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.Visibility != "" {
		m["visibility"] = f.Visibility
	}
	if f.Status != "" {
		m["status"] = f.Status
	}

	start := bson.M{}
	if !f.StartFrom.IsZero() {
		start["$gte"] = f.StartFrom
	}
	if !f.StartBefore.IsZero() {
		start["$lt"] = f.StartBefore
	}
	if !f.OverlapEnd.IsZero() {
		start["$lte"] = f.OverlapEnd
	}
	if len(start) > 0 {
		m["start_date"] = start
	}
	if !f.OverlapStart.IsZero() {
		m["end_date"] = bson.M{"$gte": f.OverlapStart}
	}
	return m
}

func projectionDoc(p models.Projection) bson.D {
	switch p {
	case models.ProjectSummary:
		return bson.D{{Key: "programs", Value: 0}, {Key: "resources", Value: 0}}
	case models.ProjectPublic:
		return bson.D{{Key: "resources", Value: 0}, {Key: "organizer_id", Value: 0}}
	case models.ProjectTitle:
		return bson.D{{Key: "title", Value: 1}}
	}
	return nil
}

// normalizeArrays keeps nested collections as [] rather than null so that
// $push and the guarded $filter always see an array.
func normalizeArrays(ev *models.Event) {
	if ev.Programs == nil {
		ev.Programs = []models.Program{}
	}
	if ev.Resources == nil {
		ev.Resources = []models.Resource{}
	}
	if ev.Tickets == nil {
		ev.Tickets = []models.EventTicket{}
	}
}
