package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"bookable/pkg/model"
)

// Demo fixtures for local development. Seeding upserts by ID, so running
// it repeatedly is safe.
var seedTenants = []model.Tenant{
	{
		ID:     "tenant-1",
		Name:   "Innovate Corp",
		Domain: "innovatecorp.com",
		Settings: model.TenantPolicy{
			MaxBookingHours: 4,
			BufferMinutes:   15,
		},
	},
	{
		ID:     "tenant-2",
		Name:   "Synergy Solutions",
		Domain: "synergysolutions.com",
		Settings: model.TenantPolicy{
			MaxBookingHours: 8,
			BufferMinutes:   30,
		},
	},
}

var seedResources = []model.Resource{
	{ID: "resource-1", TenantID: "tenant-1", Name: "Conference Room A", Type: "Meeting Room", Capacity: 10, HourlyRate: 100, IsActive: true},
	{ID: "resource-2", TenantID: "tenant-1", Name: "Projector", Type: "Equipment", Capacity: 1, HourlyRate: 25, IsActive: true},
	{ID: "resource-3", TenantID: "tenant-2", Name: "Main Hall", Type: "Event Space", Capacity: 100, HourlyRate: 250, IsActive: true},
	{ID: "resource-4", TenantID: "tenant-2", Name: "Focus Booth", Type: "Workspace", Capacity: 1, HourlyRate: 50, IsActive: false},
}

var seedUsers = []model.User{
	{ID: "user-1", TenantID: "tenant-1", Name: "John Doe", Email: "employee@innovatecorp.com"},
	{ID: "user-2", TenantID: "tenant-2", Name: "Jane Smith", Email: "manager@synergysolutions.com"},
}

const seedPassword = "password123"

func (r *mongoCatalogRepository) Seed(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	for _, tenant := range seedTenants {
		if err := upsert(ctx, r.tenants, tenant.ID, tenant); err != nil {
			return fmt.Errorf("failed to seed tenant %s: %w", tenant.ID, err)
		}
	}

	for _, resource := range seedResources {
		if err := upsert(ctx, r.resources, resource.ID, resource); err != nil {
			return fmt.Errorf("failed to seed resource %s: %w", resource.ID, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	for _, user := range seedUsers {
		user.PasswordHash = string(hash)
		if err := upsert(ctx, r.users, user.ID, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.ID, err)
		}
	}

	return nil
}

func upsert(ctx context.Context, collection *mongo.Collection, id string, doc any) error {
	_, err := collection.ReplaceOne(ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
