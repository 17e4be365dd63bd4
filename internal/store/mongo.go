// internal/store/mongo.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo wraps an already-connected client. The caller owns the client's
// lifecycle up to the point it hands it over; Close disconnects it.
func NewMongo(client *mongo.Client, database string) *Mongo {
	return &Mongo{
		client: client,
		db:     client.Database(database),
	}
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, query Query) ([]Document, error) {
	cur, err := m.db.Collection(collection).Find(ctx, buildFilter(query))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, normalizeDocument(r))
	}
	return docs, nil
}

func (m *Mongo) FindByID(ctx context.Context, collection, id string) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var raw bson.M
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s/%s: %w", collection, id, err)
	}
	return normalizeDocument(raw), nil
}

func (m *Mongo) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	values, err := m.db.Collection(collection).Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", collection, field, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	n, err := m.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// buildFilter translates a Query into a bson filter. Range values become
// inclusive $gte/$lte bounds; everything else is an equality match.
func buildFilter(query Query) bson.M {
	filter := bson.M{}
	for field, cond := range query {
		switch c := cond.(type) {
		case Range:
			bounds := bson.M{}
			if c.Min != nil {
				bounds["$gte"] = c.Min
			}
			if c.Max != nil {
				bounds["$lte"] = c.Max
			}
			if len(bounds) > 0 {
				filter[field] = bounds
			}
		default:
			filter[field] = cond
		}
	}
	return filter
}

// normalizeDocument rewrites driver types into the plain Go types the
// Document contract promises.
func normalizeDocument(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.A:
		out := make([]interface{}, 0, len(val))
		for _, item := range val {
			out = append(out, normalizeValue(item))
		}
		return out
	case bson.M:
		return map[string]interface{}(normalizeDocument(val))
	case bson.D:
		return map[string]interface{}(normalizeDocument(val.Map()))
	default:
		return v
	}
}
