package service

import "context"

// ResourceService is the capability set every CRUD resource exposes,
// parameterized over the entity and its create/update schemas. Category and
// Product implement it directly; Order adds owner scoping on top.
type ResourceService[E, C, U any] interface {
	Create(ctx context.Context, req *C) (*E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	List(ctx context.Context, page int) ([]E, int, error)
	Update(ctx context.Context, id int64, req *U) (*E, error)
	Delete(ctx context.Context, id int64) error
}
