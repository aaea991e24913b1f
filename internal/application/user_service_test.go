package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
)

func TestUserService_Veterinarians(t *testing.T) {
	users := newFakeUserRepo()
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &entity.User{Name: "Dr. Collins", Role: entity.RoleVeterinarian}))
	require.NoError(t, users.Create(ctx, &entity.User{Name: "Dr. Ortega", Role: entity.RoleVeterinarian}))
	require.NoError(t, users.Create(ctx, &entity.User{Name: "Jane", Role: entity.RoleClient}))

	// nil Redis client skips the cache
	svc := NewUserService(users, nil, testLogger())

	vets, err := svc.Veterinarians(ctx)
	require.NoError(t, err)
	require.Len(t, vets, 2)
	for _, v := range vets {
		assert.Equal(t, entity.RoleVeterinarian, v.Role)
	}
}

func TestUserService_All_AdminOnly(t *testing.T) {
	users := newFakeUserRepo()
	ctx := context.Background()
	admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	client := &entity.User{ID: "client-1", Role: entity.RoleClient}
	vet := &entity.User{ID: "vet-1", Role: entity.RoleVeterinarian}
	require.NoError(t, users.Create(ctx, admin))
	require.NoError(t, users.Create(ctx, client))
	require.NoError(t, users.Create(ctx, vet))

	svc := NewUserService(users, nil, testLogger())

	all, err := svc.All(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.All(ctx, client)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.All(ctx, vet)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
