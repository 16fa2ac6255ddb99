package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	repository "github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/resources"
	"github.com/f2fin/directory-dashboard/internal/views"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidInput  = errors.New("invalid input provided")
	ErrUnknownFilter = errors.New("unknown filter")
	ErrUpstream      = errors.New("backend request failed")
)

// ResourceService handles list, lookup and create for one collection
type ResourceService[T any] interface {
	Key() string
	List(ctx context.Context, filter, query string) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
}

type resourceService[T any] struct {
	desc   resources.Descriptor[T]
	repo   repository.Repository[T]
	logger *zap.Logger
}

// NewResourceService creates a service for the collection described by desc
func NewResourceService[T any](desc resources.Descriptor[T], repo repository.Repository[T], logger *zap.Logger) ResourceService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &resourceService[T]{
		desc:   desc,
		repo:   repo,
		logger: logger.With(zap.String("resource", desc.Key)),
	}
}

func (s *resourceService[T]) Key() string {
	return s.desc.Key
}

// List fetches the whole collection and narrows it by one named filter.
// A query without a filter name uses the collection's only filter, if it has
// exactly one.
func (s *resourceService[T]) List(ctx context.Context, filter, query string) ([]T, error) {
	var match views.Predicate[T]
	if query != "" {
		f, err := s.pickFilter(filter)
		if err != nil {
			return nil, err
		}
		match = f.Match
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("list failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if all == nil {
		all = []T{}
	}
	return views.Apply(all, query, match), nil
}

func (s *resourceService[T]) pickFilter(name string) (views.Filter[T], error) {
	if name == "" {
		if len(s.desc.Filters) == 1 {
			return s.desc.Filters[0], nil
		}
		return views.Filter[T]{}, fmt.Errorf("%w: a filter name is required", ErrInvalidInput)
	}
	f, ok := s.desc.Filter(name)
	if !ok {
		return views.Filter[T]{}, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	return f, nil
}

// Get finds one record by id in the fetched collection.
func (s *resourceService[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, ErrInvalidInput
	}
	all, err := s.List(ctx, "", "")
	if err != nil {
		return zero, err
	}
	for _, record := range all {
		if s.desc.ID(record) == id {
			return record, nil
		}
	}
	return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Create normalizes and validates record before posting it.
func (s *resourceService[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	if s.desc.Normalize != nil {
		record = s.desc.Normalize(record)
	}
	if s.desc.Validate != nil {
		if err := s.desc.Validate(record); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		s.logger.Warn("create failed", zap.String("message", repository.ErrorMessage(err)), zap.Error(err))
		return zero, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	s.logger.Info("record created", zap.String("id", s.desc.ID(created)))
	return created, nil
}
