// Package codec maps typed records to store documents and back.
//
// Decoding is tolerant by default: a field that is missing from the document,
// or stored with a non-string value, becomes the empty string. DecodeStrict
// reports the same conditions as errors instead.
package codec

import (
	"fmt"

	"github.com/dtroode/taskboard-server/internal/model"
)

// Field binds one storage key to a string field of T.
type Field[T any] struct {
	Key string
	Get func(rec *T) string
	Set func(rec *T, value string)
}

// Schema is the field table of an entity. The first field is the primary key
// and is always stored under model.FieldID.
type Schema[T any] struct {
	fields []Field[T]
}

// NewSchema builds a schema from the primary key accessor and the remaining fields.
func NewSchema[T any](id Field[T], fields ...Field[T]) *Schema[T] {
	id.Key = model.FieldID
	return &Schema[T]{fields: append([]Field[T]{id}, fields...)}
}

// Keys lists the storage keys in table order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

// ID returns the primary key of rec.
func (s *Schema[T]) ID(rec T) string {
	return s.fields[0].Get(&rec)
}

// Encode copies every field of rec verbatim into a new document.
func (s *Schema[T]) Encode(rec T) model.Document {
	doc := make(model.Document, len(s.fields))
	for _, f := range s.fields {
		doc[f.Key] = f.Get(&rec)
	}
	return doc
}

// Decode never fails.
func (s *Schema[T]) Decode(doc model.Document) T {
	var rec T
	for _, f := range s.fields {
		if v, ok := doc[f.Key].(string); ok {
			f.Set(&rec, v)
		}
	}
	return rec
}

// DecodeStrict returns a *model.DecodeError for the first field that is
// missing or not a string.
func (s *Schema[T]) DecodeStrict(doc model.Document) (T, error) {
	var rec T
	for _, f := range s.fields {
		raw, present := doc[f.Key]
		if !present {
			return rec, &model.DecodeError{Field: f.Key, Reason: "missing"}
		}
		v, ok := raw.(string)
		if !ok {
			return rec, &model.DecodeError{Field: f.Key, Reason: fmt.Sprintf("%T", raw)}
		}
		f.Set(&rec, v)
	}
	return rec, nil
}
