// Package redis stores each collection as one hash whose fields are primary
// keys and whose values are JSON encoded documents.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dtroode/taskboard-server/internal/model"
)

const keyPrefix = "taskboard:"

// replaceIfExists writes ARGV[2] under field ARGV[1] only when the field is
// already present, so a replace never creates a document.
var replaceIfExists = rdb.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

var _ model.Backend = (*Backend)(nil)

type Backend struct {
	client *rdb.Client
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url string) (*Backend, error) {
	opts, err := rdb.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := rdb.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Backend{client: client}, nil
}

func (b *Backend) Collection(name string) model.Collection {
	return NewCollection(b.client, name)
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Backend) Close(_ context.Context) error {
	return b.client.Close()
}

var _ model.Collection = (*Collection)(nil)

type Collection struct {
	client *rdb.Client
	name   string
	key    string
}

func NewCollection(client *rdb.Client, name string) *Collection {
	return &Collection{client: client, name: name, key: hashKey(name)}
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) InsertOne(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	id, _ := doc[model.FieldID].(string)
	body, err := json.Marshal(doc)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to marshal document: %w", err)
	}

	created, err := c.client.HSetNX(ctx, c.key, id, body).Result()
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert document: %w", err)
	}
	if !created {
		return model.InsertResult{}, fmt.Errorf("%w: %q in %s", model.ErrDuplicateKey, id, c.name)
	}
	return model.InsertResult{InsertedID: id}, nil
}

func (c *Collection) ReplaceOne(ctx context.Context, filter model.Filter, doc model.Document) (model.UpdateResult, error) {
	id, found, err := c.resolve(ctx, filter)
	if err != nil || !found {
		return model.UpdateResult{}, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to marshal document: %w", err)
	}

	n, err := replaceIfExists.Run(ctx, c.client, []string{c.key}, id, body).Int64()
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to replace document: %w", err)
	}
	return model.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter model.Filter) (model.DeleteResult, error) {
	id, found, err := c.resolve(ctx, filter)
	if err != nil || !found {
		return model.DeleteResult{}, err
	}

	n, err := c.client.HDel(ctx, c.key, id).Result()
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete document: %w", err)
	}
	return model.DeleteResult{DeletedCount: n}, nil
}

func (c *Collection) FindOne(ctx context.Context, filter model.Filter) (model.Document, bool, error) {
	if filter.Field != model.FieldID {
		return c.scanFor(ctx, filter)
	}

	raw, err := c.client.HGet(ctx, c.key, filter.Value).Result()
	if errors.Is(err, rdb.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get document: %w", err)
	}

	doc, err := unmarshal(raw)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func (c *Collection) Find(ctx context.Context) (model.Cursor, error) {
	values, err := c.client.HVals(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}
	return &cursor{values: values, pos: -1}, nil
}

// resolve returns the primary key of the first document matching filter.
func (c *Collection) resolve(ctx context.Context, filter model.Filter) (string, bool, error) {
	if filter.Field == model.FieldID {
		return filter.Value, true, nil
	}
	doc, found, err := c.scanFor(ctx, filter)
	if err != nil || !found {
		return "", false, err
	}
	id, _ := doc[model.FieldID].(string)
	return id, true, nil
}

// scanFor walks the hash looking for a document whose field equals the
// filter value. Entries that are not valid JSON are ignored.
func (c *Collection) scanFor(ctx context.Context, filter model.Filter) (model.Document, bool, error) {
	values, err := c.client.HVals(ctx, c.key).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to scan collection: %w", err)
	}
	for _, raw := range values {
		doc, err := unmarshal(raw)
		if err != nil {
			continue
		}
		if matches(doc, filter) {
			return doc, true, nil
		}
	}
	return nil, false, nil
}

func matches(doc model.Document, filter model.Filter) bool {
	v, ok := doc[filter.Field].(string)
	return ok && v == filter.Value
}

func unmarshal(raw string) (model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

func hashKey(collection string) string {
	return keyPrefix + collection
}

type cursor struct {
	values []string
	pos    int
}

func (c *cursor) Next(_ context.Context) bool {
	if c.pos+1 >= len(c.values) {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) Decode() (model.Document, error) {
	return unmarshal(c.values[c.pos])
}

func (c *cursor) Close(_ context.Context) error {
	c.values = nil
	return nil
}
