// Package mongo stores documents in MongoDB collections.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/taskboard-server/internal/model"
)

// collectionAPI is the subset of *mongo.Collection the adapter needs.
type collectionAPI interface {
	Name() string
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

var _ model.Collection = (*Collection)(nil)

type Collection struct {
	api collectionAPI
}

func NewCollection(api collectionAPI) *Collection {
	return &Collection{api: api}
}

func (c *Collection) Name() string {
	return c.api.Name()
}

func (c *Collection) InsertOne(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	res, err := c.api.InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.InsertResult{}, fmt.Errorf("%w: %w", model.ErrDuplicateKey, err)
		}
		return model.InsertResult{}, err
	}
	return model.InsertResult{InsertedID: insertedID(res.InsertedID)}, nil
}

func (c *Collection) ReplaceOne(ctx context.Context, filter model.Filter, doc model.Document) (model.UpdateResult, error) {
	res, err := c.api.ReplaceOne(ctx, toBSON(filter), bson.M(doc))
	if err != nil {
		return model.UpdateResult{}, err
	}
	return model.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter model.Filter) (model.DeleteResult, error) {
	res, err := c.api.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return model.DeleteResult{}, err
	}
	return model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (c *Collection) FindOne(ctx context.Context, filter model.Filter) (model.Document, bool, error) {
	var m bson.M
	err := c.api.FindOne(ctx, toBSON(filter)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return model.Document(m), true, nil
}

func (c *Collection) Find(ctx context.Context) (model.Cursor, error) {
	cur, err := c.api.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return &cursor{cur: cur}, nil
}

type cursor struct {
	cur *mongo.Cursor
}

func (c *cursor) Next(ctx context.Context) bool {
	return c.cur.Next(ctx)
}

func (c *cursor) Decode() (model.Document, error) {
	var m bson.M
	if err := c.cur.Decode(&m); err != nil {
		return nil, err
	}
	return model.Document(m), nil
}

func (c *cursor) Close(ctx context.Context) error {
	return c.cur.Close(ctx)
}

func toBSON(f model.Filter) bson.D {
	return bson.D{{Key: f.Field, Value: f.Value}}
}

func insertedID(id interface{}) string {
	if s, ok := id.(string); ok {
		return s
	}
	return fmt.Sprint(id)
}
