package repositories

import (
	"context"
)

// Repository is the list-and-create surface of one backend collection
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
}

// Paths names the list and create endpoints of a collection
type Paths struct {
	List   string
	Create string
}

// RESTRepository implements Repository against the backend REST API
type RESTRepository[T any] struct {
	client *Client
	paths  Paths
}

// NewRESTRepository binds a collection's endpoints to client
func NewRESTRepository[T any](client *Client, paths Paths) Repository[T] {
	return &RESTRepository[T]{client: client, paths: paths}
}

func (r *RESTRepository[T]) List(ctx context.Context) ([]T, error) {
	return FetchCollection[T](ctx, r.client, r.paths.List)
}

func (r *RESTRepository[T]) Create(ctx context.Context, record T) (T, error) {
	return CreateRecord(ctx, r.client, r.paths.Create, record)
}
