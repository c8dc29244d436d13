package catalog

import "context"

// Repository defines data access for the service catalog
type Repository interface {
	Create(ctx context.Context, service Service) (Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Update(ctx context.Context, service Service) (Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Service, error)
}
