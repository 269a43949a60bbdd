package service

import (
	"context"
	"errors"

	catalogerrors "bookable/internal/catalog/errors"
	"bookable/internal/catalog/repository"
	"bookable/pkg/config"
	apperrors "bookable/pkg/errors"
	"bookable/pkg/model"
)

type CatalogService interface {
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error)
	ListResources(ctx context.Context, tenantID string) ([]model.Resource, error)
	GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	cfg  *config.Config
}

func NewCatalogService(repo repository.CatalogRepository, cfg *config.Config) CatalogService {
	return &catalogService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *catalogService) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list tenants", "error", err)
		return nil, apperrors.Internal("Failed to retrieve tenants", err)
	}
	return tenants, nil
}

func (s *catalogService) GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error) {
	if tenantID == "" {
		return nil, apperrors.InvalidInput("Tenant ID cannot be empty")
	}

	tenant, err := s.repo.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrTenantNotFound) {
			return nil, apperrors.NotFoundWithID("Tenant", tenantID)
		}
		return nil, apperrors.Internal("Failed to retrieve tenant", err)
	}
	return tenant, nil
}

func (s *catalogService) ListResources(ctx context.Context, tenantID string) ([]model.Resource, error) {
	if tenantID == "" {
		return nil, apperrors.InvalidInput("Tenant ID cannot be empty")
	}

	if _, err := s.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	resources, err := s.repo.ListResources(ctx, tenantID)
	if err != nil {
		s.cfg.Log.Error("Failed to list resources", "tenant_id", tenantID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve resources", err)
	}
	return resources, nil
}

func (s *catalogService) GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error) {
	if tenantID == "" || resourceID == "" {
		return nil, apperrors.InvalidInput("Tenant ID and resource ID are required")
	}

	resource, err := s.repo.GetResource(ctx, tenantID, resourceID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrResourceNotFound) {
			return nil, apperrors.NotFoundWithID("Resource", resourceID)
		}
		return nil, apperrors.Internal("Failed to retrieve resource", err)
	}
	return resource, nil
}
