package services

import "context"

type Repository interface {
	List(ctx context.Context, f Filter) ([]Service, int64, error)
	// ListAll ignores paging; used where every matching row is needed.
	ListAll(ctx context.Context, f Filter) ([]Service, error)
	Get(ctx context.Context, id string) (*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	GetByStripePrice(ctx context.Context, priceID string) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
}
