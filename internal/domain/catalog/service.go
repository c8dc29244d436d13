package catalog

import "context"

// CatalogService defines admin operations on the service catalog
type CatalogService interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (ServiceResponse, error)
	UpdateService(ctx context.Context, req UpdateServiceRequest) (ServiceResponse, error)

	// DeleteService removes a service unless profiles still reference it
	DeleteService(ctx context.Context, id string) error

	ListServices(ctx context.Context) (ListServicesResponse, error)
}
