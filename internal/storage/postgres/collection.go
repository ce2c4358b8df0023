// Package postgres stores documents as JSONB rows of a single table keyed by
// (collection, id).
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/taskboard-server/internal/model"
)

const uniqueViolation = "23505"

var _ model.Collection = (*Collection)(nil)

type Collection struct {
	db   *sql.DB
	name string
}

func NewCollection(db *sql.DB, name string) *Collection {
	return &Collection{db: db, name: name}
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

	const query = `INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)`
	if _, err := c.db.ExecContext(ctx, query, c.name, id, string(body)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.InsertResult{}, fmt.Errorf("%w: %w", model.ErrDuplicateKey, err)
		}
		return model.InsertResult{}, fmt.Errorf("failed to insert document: %w", err)
	}

	return model.InsertResult{InsertedID: id}, nil
}

func (c *Collection) ReplaceOne(ctx context.Context, filter model.Filter, doc model.Document) (model.UpdateResult, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to marshal document: %w", err)
	}

	where, args := c.match(filter, 3)
	query := `UPDATE documents SET body = $2::jsonb WHERE ` + where
	res, err := c.db.ExecContext(ctx, query, append([]any{c.name, string(body)}, args...)...)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to replace document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return model.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter model.Filter) (model.DeleteResult, error) {
	where, args := c.match(filter, 2)
	query := `DELETE FROM documents WHERE ` + where
	res, err := c.db.ExecContext(ctx, query, append([]any{c.name}, args...)...)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return model.DeleteResult{DeletedCount: n}, nil
}

func (c *Collection) FindOne(ctx context.Context, filter model.Filter) (model.Document, bool, error) {
	where, args := c.match(filter, 2)
	query := `SELECT body FROM documents WHERE ` + where

	var raw []byte
	err := c.db.QueryRowContext(ctx, query, append([]any{c.name}, args...)...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, true, nil
}

func (c *Collection) Find(ctx context.Context) (model.Cursor, error) {
	const query = `SELECT body FROM documents WHERE collection = $1 ORDER BY seq`
	rows, err := c.db.QueryContext(ctx, query, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}
	return &cursor{rows: rows}, nil
}

// match builds the row predicate for filter. The collection name is always $1;
// filter arguments are numbered from next.
func (c *Collection) match(filter model.Filter, next int) (string, []any) {
	if filter.Field == model.FieldID {
		return fmt.Sprintf(`collection = $1 AND id = $%d`, next), []any{filter.Value}
	}
	return fmt.Sprintf(
		`collection = $1 AND id = (SELECT id FROM documents WHERE collection = $1 AND body -> $%d::text = to_jsonb($%d::text) ORDER BY seq LIMIT 1)`,
		next, next+1,
	), []any{filter.Field, filter.Value}
}

type cursor struct {
	rows *sql.Rows
}

func (c *cursor) Next(_ context.Context) bool {
	return c.rows.Next()
}

func (c *cursor) Decode() (model.Document, error) {
	var raw []byte
	if err := c.rows.Scan(&raw); err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *cursor) Close(_ context.Context) error {
	return c.rows.Close()
}
