package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookable/internal/auth/token"
	catalogerrors "bookable/internal/catalog/errors"
	"bookable/pkg/config"
	apperrors "bookable/pkg/errors"
	"bookable/pkg/logger"
	"bookable/pkg/model"
)

type mockRepo struct {
	getUserByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	getTenantFunc      func(ctx context.Context, tenantID string) (*model.Tenant, error)
}

func (m *mockRepo) ListTenants(ctx context.Context) ([]model.Tenant, error) { return nil, nil }

func (m *mockRepo) GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error) {
	return m.getTenantFunc(ctx, tenantID)
}

func (m *mockRepo) ListResources(ctx context.Context, tenantID string) ([]model.Resource, error) {
	return nil, nil
}

func (m *mockRepo) GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error) {
	return nil, nil
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.getUserByEmailFunc(ctx, email)
}

func (m *mockRepo) Seed(ctx context.Context) error { return nil }

const testSecret = "test-secret"

func testUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		TenantID:     "tenant-1",
		Name:         "John Doe",
		Email:        "employee@innovatecorp.com",
		PasswordHash: string(hash),
	}
}

func newAuthService(repo *mockRepo) AuthService {
	return NewAuthService(repo, &config.Config{
		Log:       logger.Discard(),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	})
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "password123")
	repo := &mockRepo{
		getUserByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
			assert.Equal(t, "employee@innovatecorp.com", email)
			return user, nil
		},
		getTenantFunc: func(_ context.Context, tenantID string) (*model.Tenant, error) {
			return &model.Tenant{ID: tenantID, Name: "Innovate Corp"}, nil
		},
	}

	// Email arrives with stray case and whitespace.
	result, err := newAuthService(repo).Login(context.Background(), " Employee@InnovateCorp.com ", "password123")
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "Innovate Corp", result.Tenant.Name)

	claims, err := token.Parse(result.Token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "John Doe", claims.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "password123")
	repo := &mockRepo{
		getUserByEmailFunc: func(_ context.Context, _ string) (*model.User, error) {
			return user, nil
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), user.Email, "wrong")
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := &mockRepo{
		getUserByEmailFunc: func(_ context.Context, _ string) (*model.User, error) {
			return nil, catalogerrors.ErrUserNotFound
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)

	// Unknown user and wrong password are indistinguishable to the caller.
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newAuthService(&mockRepo{})

	_, err := svc.Login(context.Background(), "", "password123")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)

	_, err = svc.Login(context.Background(), "employee@innovatecorp.com", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
}

func TestLoginOrphanedTenant(t *testing.T) {
	user := testUser(t, "password123")
	repo := &mockRepo{
		getUserByEmailFunc: func(_ context.Context, _ string) (*model.User, error) {
			return user, nil
		},
		getTenantFunc: func(_ context.Context, tenantID string) (*model.Tenant, error) {
			return nil, catalogerrors.ErrTenantNotFound
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), user.Email, "password123")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnauthorized, apperrors.AsAppError(err).Code)
}
