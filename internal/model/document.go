package model

import "context"

// FieldID is the storage key of the primary key in every collection.
const FieldID = "_id"

// Document is a string keyed, loosely typed record as held by the backing store.
type Document map[string]any

// Filter matches documents whose Field holds exactly the string Value.
type Filter struct {
	Field string
	Value string
}

// ByID returns a filter on the primary key.
func ByID(id string) Filter {
	return Filter{Field: FieldID, Value: id}
}

// Collection is a handle to one set of documents in a backend.
type Collection interface {
	Name() string
	InsertOne(ctx context.Context, doc Document) (InsertResult, error)
	// ReplaceOne overwrites the first document matching filter with doc.
	ReplaceOne(ctx context.Context, filter Filter, doc Document) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (DeleteResult, error)
	// FindOne reports false when nothing matches.
	FindOne(ctx context.Context, filter Filter) (Document, bool, error)
	Find(ctx context.Context) (Cursor, error)
}

// Cursor iterates over the result of a full collection scan.
//
// Decode may fail for a single item without invalidating the cursor; callers
// move on with Next.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode() (Document, error)
	Close(ctx context.Context) error
}

// Backend opens collections and owns the underlying connection.
type Backend interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// InsertResult reports the primary key of an inserted document.
type InsertResult struct {
	InsertedID string
}

// UpdateResult reports how many documents a replace matched and changed.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64
}
