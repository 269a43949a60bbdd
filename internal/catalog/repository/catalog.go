package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	catalogerrors "bookable/internal/catalog/errors"
	"bookable/pkg/config"
	"bookable/pkg/model"
)

const (
	TenantsCollection   = "tenants"
	ResourcesCollection = "resources"
	UsersCollection     = "users"
)

// CatalogRepository serves the tenant/resource/user catalog. The booking
// core only ever reads from it.
type CatalogRepository interface {
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error)
	ListResources(ctx context.Context, tenantID string) ([]model.Resource, error)
	GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	Seed(ctx context.Context) error
}

type mongoCatalogRepository struct {
	cfg       *config.Config
	tenants   *mongo.Collection
	resources *mongo.Collection
	users     *mongo.Collection
}

func NewMongoCatalogRepository(cfg *config.Config) CatalogRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoCatalogRepository{
		cfg:       cfg,
		tenants:   db.Collection(TenantsCollection),
		resources: db.Collection(ResourcesCollection),
		users:     db.Collection(UsersCollection),
	}
}

func (r *mongoCatalogRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCatalogRepository) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.tenants.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var tenants []model.Tenant
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("failed to decode tenants: %w", err)
	}
	return tenants, nil
}

func (r *mongoCatalogRepository) GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var tenant model.Tenant
	err := r.tenants.FindOne(ctx, bson.M{"_id": tenantID}).Decode(&tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", catalogerrors.ErrTenantNotFound, tenantID)
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	return &tenant, nil
}

func (r *mongoCatalogRepository) ListResources(ctx context.Context, tenantID string) ([]model.Resource, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.resources.Find(ctx, bson.M{"tenant_id": tenantID}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []model.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}
	return resources, nil
}

func (r *mongoCatalogRepository) GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var resource model.Resource
	err := r.resources.FindOne(ctx, bson.M{"_id": resourceID, "tenant_id": tenantID}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", catalogerrors.ErrResourceNotFound, resourceID)
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}
	return &resource, nil
}

func (r *mongoCatalogRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", catalogerrors.ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
