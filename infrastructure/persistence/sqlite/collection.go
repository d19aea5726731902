package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
)

// Document kinds stored in the shared table.
const (
	KindNode        = "node"
	KindRecord      = "record"
	KindSkill       = "skill"
	KindAchievement = "achievement"
	KindUser        = "user"
)

// Collection is a typed view over one document kind: JSON in, JSON out,
// insertion-ordered listing.
type Collection[T any] struct {
	db   *DB
	kind string
}

// NewCollection creates a typed collection over the given kind.
func NewCollection[T any](db *DB, kind string) *Collection[T] {
	return &Collection[T]{db: db, kind: kind}
}

// All returns every entity of the kind in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	bodies, err := c.db.List(ctx, c.kind)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(bodies))
	for _, body := range bodies {
		var item T
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("corrupt %s document: %w", c.kind, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get fetches one entity by id, reporting presence explicitly.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var item T
	body, ok, err := c.db.Get(ctx, c.kind, id)
	if err != nil || !ok {
		return item, false, err
	}
	if err := json.Unmarshal(body, &item); err != nil {
		return item, false, fmt.Errorf("corrupt %s document: %w", c.kind, err)
	}
	return item, true, nil
}

// Put inserts or replaces one entity under id.
func (c *Collection[T]) Put(ctx context.Context, id string, item T) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", c.kind, err)
	}
	return c.db.Put(ctx, c.kind, id, body)
}

// Delete removes one entity, reporting whether it existed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	return c.db.Delete(ctx, c.kind, id)
}
