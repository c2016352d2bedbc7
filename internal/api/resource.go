package api

import (
	"context"
	"fmt"
	"net/http"

	"opsdeck/internal/domain"
)

// listEnvelope is the backend's list response shape:
// {"success":true,"data":{"data":[...],"meta":{...}}}
type listEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    struct {
		Data []T             `json:"data"`
		Meta domain.PageMeta `json:"meta"`
	} `json:"data"`
}

// itemEnvelope wraps single-item responses
type itemEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// Resource is a thin repository over one REST collection. All entity
// repositories are instances of this type; nothing entity-specific
// exists beyond the element type and the collection path.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource creates a repository for /api/<entity>
func NewResource[T any](c *Client, entity string) *Resource[T] {
	return &Resource[T]{
		client: c,
		path:   "/api/" + entity,
	}
}

// List fetches one page of the collection
func (r *Resource[T]) List(ctx context.Context, f ListFilters) ([]T, *domain.PageMeta, error) {
	var env listEnvelope[T]
	if err := r.client.do(ctx, http.MethodGet, r.path, f.Values(), nil, &env); err != nil {
		return nil, nil, err
	}
	meta := env.Data.Meta
	return env.Data.Data, &meta, nil
}

// Get fetches a single item by id
func (r *Resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var env itemEnvelope[T]
	path := fmt.Sprintf("%s/%d", r.path, id)
	if err := r.client.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Create adds a new item and returns the server's version of it
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var env itemEnvelope[T]
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Update modifies an existing item
func (r *Resource[T]) Update(ctx context.Context, id int, payload any) (*T, error) {
	var env itemEnvelope[T]
	path := fmt.Sprintf("%s/%d", r.path, id)
	if err := r.client.do(ctx, http.MethodPut, path, nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Delete removes an item
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", r.path, id)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
