package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskboard-server/internal/model"
)

// MockCollection mocks the model.Collection interface
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) Name() string {
	return "mock"
}

func (m *MockCollection) InsertOne(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockCollection) ReplaceOne(ctx context.Context, filter model.Filter, doc model.Document) (model.UpdateResult, error) {
	args := m.Called(ctx, filter, doc)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockCollection) DeleteOne(ctx context.Context, filter model.Filter) (model.DeleteResult, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func (m *MockCollection) FindOne(ctx context.Context, filter model.Filter) (model.Document, bool, error) {
	args := m.Called(ctx, filter)
	doc, _ := args.Get(0).(model.Document)
	return doc, args.Bool(1), args.Error(2)
}

func (m *MockCollection) Find(ctx context.Context) (model.Cursor, error) {
	args := m.Called(ctx)
	cur, _ := args.Get(0).(model.Cursor)
	return cur, args.Error(1)
}

// cursorItem is one step of a stubCursor: either a document or a read error.
type cursorItem struct {
	doc model.Document
	err error
}

type stubCursor struct {
	items  []cursorItem
	pos    int
	closed bool
}

func newStubCursor(items ...cursorItem) *stubCursor {
	return &stubCursor{items: items, pos: -1}
}

func (c *stubCursor) Next(_ context.Context) bool {
	if c.pos+1 >= len(c.items) {
		return false
	}
	c.pos++
	return true
}

func (c *stubCursor) Decode() (model.Document, error) {
	item := c.items[c.pos]
	return item.doc, item.err
}

func (c *stubCursor) Close(_ context.Context) error {
	c.closed = true
	return nil
}
