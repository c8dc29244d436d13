package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/catalog"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
)

type CatalogServiceImpl struct {
	catalogRepo catalog.Repository
	userRepo    user.Repository
}

func NewCatalogService(catalogRepo catalog.Repository, userRepo user.Repository) catalog.CatalogService {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
	}
}

// CreateService implements catalog.CatalogService.
func (c *CatalogServiceImpl) CreateService(ctx context.Context, req catalog.CreateServiceRequest) (catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ServiceResponse{}, err
	}

	created, err := c.catalogRepo.Create(ctx, catalog.Service{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return catalog.ServiceResponse{}, err
	}

	return catalog.ToServiceResponse(created), nil
}

// UpdateService implements catalog.CatalogService.
func (c *CatalogServiceImpl) UpdateService(ctx context.Context, req catalog.UpdateServiceRequest) (catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ServiceResponse{}, err
	}

	updated, err := c.catalogRepo.Update(ctx, catalog.Service{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return catalog.ServiceResponse{}, err
	}

	return catalog.ToServiceResponse(updated), nil
}

// DeleteService implements catalog.CatalogService.
func (c *CatalogServiceImpl) DeleteService(ctx context.Context, id string) error {
	count, err := c.userRepo.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return catalog.ErrServiceInUse
	}

	return c.catalogRepo.Delete(ctx, id)
}

// ListServices implements catalog.CatalogService.
func (c *CatalogServiceImpl) ListServices(ctx context.Context) (catalog.ListServicesResponse, error) {
	services, err := c.catalogRepo.List(ctx)
	if err != nil {
		return catalog.ListServicesResponse{}, err
	}
	return catalog.ToListServicesResponse(services), nil
}
