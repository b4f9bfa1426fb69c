package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autohost/internal/domain/entity"
	"autohost/pkg/errors"
)

func TestUpdateProfileMergesFields(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"uid-1": {
			ID:       "uid-1",
			Email:    "x@example.com",
			FullName: "Ana",
			Phone:    "5511111111",
			Role:     entity.RoleSeller,
			RFC:      "XAXX010101000",
		},
	}}
	uc := NewUserUseCase(users)

	user, err := uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{
		Phone:   "5522222222",
		Address: &entity.Address{City: "Guadalajara"},
	})
	require.NoError(t, err)

	assert.Equal(t, "5522222222", user.Phone)
	assert.Equal(t, "Guadalajara", user.Address.City)
	// Untouched fields survive.
	assert.Equal(t, "Ana", user.FullName)
	assert.Equal(t, "XAXX010101000", user.RFC)
	assert.Equal(t, entity.RoleSeller, user.Role)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{})

	_, err := uc.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{Phone: "55"})
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestGetProfile(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"uid-1": {ID: "uid-1", Email: "x@example.com"},
	}}
	uc := NewUserUseCase(users)

	user, err := uc.GetProfile(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "x@example.com", user.Email)
}
