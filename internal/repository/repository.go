// Package repository implements the CRUD contract for an entity over a single
// document collection.
package repository

import (
	"context"

	"github.com/dtroode/taskboard-server/internal/codec"
	"github.com/dtroode/taskboard-server/internal/model"
)

// Option configures a Repository.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictDecode makes reads fail on documents that do not match the
// entity's field table instead of defaulting the offending fields to "".
func WithStrictDecode() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Repository owns one collection and maps its documents to records of type T.
type Repository[T any] struct {
	collection model.Collection
	schema     *codec.Schema[T]
	strict     bool
}

// New creates a repository. The collection handle is never replaced.
func New[T any](collection model.Collection, schema *codec.Schema[T], opts ...Option) *Repository[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{
		collection: collection,
		schema:     schema,
		strict:     o.strict,
	}
}

// Create inserts rec as a new document. A duplicate primary key is reported by
// the store and unwraps to model.ErrDuplicateKey.
func (r *Repository[T]) Create(ctx context.Context, rec T) (model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, r.schema.Encode(rec))
	if err != nil {
		return model.InsertResult{}, r.storeError("insert", err)
	}
	return res, nil
}

// Update replaces the whole document whose primary key equals the id of rec.
// A missing document yields a zero ModifiedCount.
func (r *Repository[T]) Update(ctx context.Context, rec T) (model.UpdateResult, error) {
	filter := model.ByID(r.schema.ID(rec))
	res, err := r.collection.ReplaceOne(ctx, filter, r.schema.Encode(rec))
	if err != nil {
		return model.UpdateResult{}, r.storeError("update", err)
	}
	return res, nil
}

// DeleteByID removes at most one document.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (model.DeleteResult, error) {
	return r.deleteOne(ctx, model.ByID(id))
}

// GetAll scans the collection in store order. Items the cursor fails to read
// are skipped; only a failure to start the scan is returned.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	cursor, err := r.collection.Find(ctx)
	if err != nil {
		return nil, r.storeError("find", err)
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	for cursor.Next(ctx) {
		doc, err := cursor.Decode()
		if err != nil {
			continue
		}
		rec, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// GetByID reports false with a nil error when no document has the id.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T

	doc, found, err := r.collection.FindOne(ctx, model.ByID(id))
	if err != nil {
		return zero, false, r.storeError("find one", err)
	}
	if !found {
		return zero, false, nil
	}

	rec, err := r.decode(doc)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (r *Repository[T]) deleteOne(ctx context.Context, filter model.Filter) (model.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return model.DeleteResult{}, r.storeError("delete", err)
	}
	return res, nil
}

func (r *Repository[T]) decode(doc model.Document) (T, error) {
	if r.strict {
		return r.schema.DecodeStrict(doc)
	}
	return r.schema.Decode(doc), nil
}

func (r *Repository[T]) storeError(op string, err error) error {
	return &model.StoreError{Op: op, Collection: r.collection.Name(), Err: err}
}
