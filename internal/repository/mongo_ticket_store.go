package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventhub-backend/internal/models"
)

type MongoTicketStore struct {
	col *mongo.Collection
}

func NewMongoTicketStore(db *mongo.Database) *MongoTicketStore {
	return &MongoTicketStore{col: db.Collection(TicketsCollection)}
}

func (s *MongoTicketStore) Insert(ctx context.Context, t *models.IssuedTicket) error {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	if t.Services == nil {
		t.Services = []models.AddOnService{}
	}
	if _, err := s.col.InsertOne(ctx, t); err != nil {
		return storeErr("insert ticket", err)
	}
	return nil
}

func (s *MongoTicketStore) Load(ctx context.Context, id bson.ObjectID) (*models.IssuedTicket, error) {
	var t models.IssuedTicket
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrTicketNotFound
		}
		return nil, storeErr("load ticket", err)
	}
	return &t, nil
}

func (s *MongoTicketStore) MarkScanned(ctx context.Context, id bson.ObjectID, at time.Time) (int64, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "is_scanned": false},
		bson.M{"$set": bson.M{"is_scanned": true, "scanned_at": at}},
	)
	if err != nil {
		return 0, storeErr("mark ticket scanned", err)
	}
	return res.MatchedCount, nil
}

func (s *MongoTicketStore) Find(ctx context.Context, f TicketFilter, skip, limit int64) ([]models.IssuedTicket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.col.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, storeErr("find tickets", err)
	}
	defer cur.Close(ctx)

	out := []models.IssuedTicket{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr("decode tickets", err)
	}
	return out, nil
}

func (s *MongoTicketStore) Count(ctx context.Context, f TicketFilter) (int64, error) {
	n, err := s.col.CountDocuments(ctx, f.bson())
	if err != nil {
		return 0, storeErr("count tickets", err)
	}
	return n, nil
}

func (f TicketFilter) bson() bson.M {
	m := bson.M{}
	if f.UserID != "" {
		m["user_id"] = f.UserID
	}
	if !f.EventID.IsZero() {
		m["event_id"] = f.EventID
	}
	return m
}
