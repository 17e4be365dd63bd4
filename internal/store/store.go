// internal/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a single record as it travels through the data-access layer.
// Keys are the persisted field names; values are plain Go types only
// (string, int, int64, float64, time.Time). Implementations normalize
// driver-specific types before a document leaves this package.
type Document map[string]interface{}

// Query filters documents in a collection. A plain value means exact match;
// a Range value constrains a numeric field to an inclusive interval.
type Query map[string]interface{}

// Range is an inclusive bound on a numeric field. A nil end is unbounded.
type Range struct {
	Min interface{}
	Max interface{}
}

var (
	// ErrNotConfigured marks operations attempted without a configured store.
	ErrNotConfigured = errors.New("document store not configured")

	// ErrInvalidID marks a syntactically malformed document id.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNotFound marks a lookup that matched no document.
	ErrNotFound = errors.New("document not found")
)

// Store is the surface of the document store this service relies on.
// Implementations must be safe for concurrent use.
type Store interface {
	// Insert writes a document into the named collection and returns the
	// store-assigned id as a hex string.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns every document in the collection matching the query, in
	// store order. A nil query matches everything.
	Find(ctx context.Context, collection string, query Query) ([]Document, error)

	// FindByID returns the single document with the given id.
	// Returns ErrInvalidID for a malformed id and ErrNotFound for a miss.
	FindByID(ctx context.Context, collection, id string) (Document, error)

	// Distinct returns the distinct values of a string field across the
	// collection, in store order.
	Distinct(ctx context.Context, collection, field string) ([]string, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int64, error)

	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// CreateDocument stamps created_at and updated_at (overwriting any
// caller-supplied value) and inserts the document into the named collection.
// The caller's map is not modified.
func CreateDocument(ctx context.Context, s Store, collection string, fields Document) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	doc := make(Document, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	return s.Insert(ctx, collection, doc)
}

// GetDocuments runs a filter query against the named collection and returns
// all matches in store order. There is no result bound; the catalogs this
// service fronts are small.
func GetDocuments(ctx context.Context, s Store, collection string, query Query) ([]Document, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}
	return s.Find(ctx, collection, query)
}

// NewID returns a fresh store-format document id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is syntactically a store document id
// (24-character hex form of a 12-byte ObjectID).
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
