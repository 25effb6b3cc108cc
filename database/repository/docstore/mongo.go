package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore returns a Store backed by a MongoDB database. Collections map
// one to one; document identifiers are the hex form of the ObjectID.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

var mongoOps = map[Operator]string{
	OpNotEqual:     "$ne",
	OpLess:         "$lt",
	OpLessEqual:    "$lte",
	OpGreater:      "$gt",
	OpGreaterEqual: "$gte",
}

func (s *mongoStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("mongo: insert into %s: %w", collection, err)
	}
	return id.Hex(), nil
}

func (s *mongoStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	filter := bson.D{}
	for _, f := range q.Filters {
		if f.Op == OpEqual {
			filter = append(filter, bson.E{Key: f.Field, Value: f.Value})
			continue
		}
		op, ok := mongoOps[f.Op]
		if !ok {
			return nil, fmt.Errorf("mongo: unsupported operator %q", f.Op)
		}
		filter = append(filter, bson.E{Key: f.Field, Value: bson.D{{Key: op, Value: f.Value}}})
	}

	opts := options.Find()
	if len(q.Orders) > 0 {
		sort := bson.D{}
		for _, o := range q.Orders {
			dir := 1
			if o.Direction == Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: o.Field, Value: dir})
		}
		opts.SetSort(sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("mongo: decode %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (s *mongoStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("mongo: update %s/%s: %w", collection, id, ErrNotFound)
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": data})
	if err != nil {
		return fmt.Errorf("mongo: update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mongo: update %s/%s: %w", collection, id, ErrNotFound)
	}
	return nil
}

// Delete of a missing document succeeds, matching the hosted store's semantics.
func (s *mongoStore) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("mongo: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// fromBSON converts a raw document into the driver-neutral shape: the ObjectID
// becomes the identifier and BSON-specific scalar types become plain Go ones.
func fromBSON(m bson.M) Document {
	doc := Document{Data: make(map[string]any, len(m))}
	for k, v := range m {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				doc.ID = oid.Hex()
			} else {
				doc.ID = fmt.Sprint(v)
			}
			continue
		}
		doc.Data[k] = plain(v)
	}
	return doc
}

func plain(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}
		return out
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	default:
		return v
	}
}
