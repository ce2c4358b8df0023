// Package memory is a process-local document backend. Documents live only as
// long as the Backend value.
package memory

import (
	"context"
	"maps"
	"reflect"
	"sync"

	"github.com/dtroode/taskboard-server/internal/model"
)

var _ model.Backend = (*Backend)(nil)

type Backend struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

func NewBackend() *Backend {
	return &Backend{collections: make(map[string]*Collection)}
}

// Collection returns the named collection, creating it on first use.
func (b *Backend) Collection(name string) model.Collection {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.collections[name]
	if !ok {
		c = NewCollection(name)
		b.collections[name] = c
	}
	return c
}

func (b *Backend) Ping(_ context.Context) error {
	return nil
}

func (b *Backend) Close(_ context.Context) error {
	return nil
}

var _ model.Collection = (*Collection)(nil)

// Collection keeps documents in insertion order.
type Collection struct {
	name string

	mu   sync.RWMutex
	ids  []string
	docs map[string]model.Document
}

func NewCollection(name string) *Collection {
	return &Collection{
		name: name,
		docs: make(map[string]model.Document),
	}
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) InsertOne(_ context.Context, doc model.Document) (model.InsertResult, error) {
	id, _ := doc[model.FieldID].(string)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; exists {
		return model.InsertResult{}, model.ErrDuplicateKey
	}
	c.ids = append(c.ids, id)
	c.docs[id] = maps.Clone(doc)

	return model.InsertResult{InsertedID: id}, nil
}

func (c *Collection) ReplaceOne(_ context.Context, filter model.Filter, doc model.Document) (model.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.match(filter)
	if !ok {
		return model.UpdateResult{}, nil
	}

	replacement := maps.Clone(doc)
	replacement[model.FieldID] = id

	res := model.UpdateResult{MatchedCount: 1}
	if !reflect.DeepEqual(c.docs[id], replacement) {
		res.ModifiedCount = 1
	}
	c.docs[id] = replacement

	return res, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter model.Filter) (model.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.match(filter)
	if !ok {
		return model.DeleteResult{}, nil
	}
	delete(c.docs, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}

	return model.DeleteResult{DeletedCount: 1}, nil
}

func (c *Collection) FindOne(_ context.Context, filter model.Filter) (model.Document, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.match(filter)
	if !ok {
		return nil, false, nil
	}
	return maps.Clone(c.docs[id]), true, nil
}

// Find returns a cursor over a copy of the collection taken at call time.
func (c *Collection) Find(_ context.Context) (model.Cursor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]model.Document, 0, len(c.ids))
	for _, id := range c.ids {
		docs = append(docs, maps.Clone(c.docs[id]))
	}
	return &cursor{docs: docs, pos: -1}, nil
}

// Put stores doc as is, bypassing the duplicate check. Useful for seeding
// documents that the codec would never produce.
func (c *Collection) Put(doc model.Document) {
	id, _ := doc[model.FieldID].(string)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.docs[id] = maps.Clone(doc)
}

// match must be called with c.mu held.
func (c *Collection) match(filter model.Filter) (string, bool) {
	if filter.Field == model.FieldID {
		_, ok := c.docs[filter.Value]
		return filter.Value, ok
	}
	for _, id := range c.ids {
		if v, ok := c.docs[id][filter.Field].(string); ok && v == filter.Value {
			return id, true
		}
	}
	return "", false
}

type cursor struct {
	docs []model.Document
	pos  int
}

func (c *cursor) Next(_ context.Context) bool {
	if c.pos+1 >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) Decode() (model.Document, error) {
	return c.docs[c.pos], nil
}

func (c *cursor) Close(_ context.Context) error {
	c.docs = nil
	return nil
}
