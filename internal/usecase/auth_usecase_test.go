package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autohost/internal/domain/entity"
	"autohost/pkg/errors"
)

type fakeAuthClient struct {
	createdUID string
	verifyUID  string
	signInErr  error
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createdUID == "" {
		f.createdUID = "uid-1"
	}
	return f.createdUID, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if f.verifyUID == "" {
		return "", errors.Unauthorized("Invalid credentials", nil)
	}
	return f.verifyUID, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "id-token", nil
}

func TestRegisterBuyer(t *testing.T) {
	users := &fakeUserRepo{}
	uc := NewAuthUseCase(&fakeAuthClient{}, users)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "buyer@example.com",
		Password: "secret1",
		FullName: "Ana",
		Role:     entity.RoleBuyer,
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, entity.RoleBuyer, result.User.Role)
	assert.Equal(t, "id-token", result.Token)
	assert.Contains(t, users.users, "uid-1")
}

func TestRegisterSellerRequiresBankDetails(t *testing.T) {
	uc := NewAuthUseCase(&fakeAuthClient{}, &fakeUserRepo{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "seller@example.com",
		Password: "secret1",
		FullName: "Luis",
		Role:     entity.RoleSeller,
		RFC:      "XAXX010101000",
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "seller@example.com",
		Password: "secret1",
		FullName: "Luis",
		Role:     entity.RoleSeller,
		RFC:      "XAXX010101000",
		Clabe:    "002010077777777771",
	})
	require.NoError(t, err)
	assert.True(t, result.User.IsSeller())
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	uc := NewAuthUseCase(&fakeAuthClient{}, &fakeUserRepo{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "x@example.com",
		Password: "secret1",
		FullName: "X",
		Role:     "admin",
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"existing": {ID: "existing", Email: "taken@example.com"},
	}}
	uc := NewAuthUseCase(&fakeAuthClient{}, users)

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "secret1",
		FullName: "Dup",
		Role:     entity.RoleBuyer,
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestLoginWrongPassword(t *testing.T) {
	uc := NewAuthUseCase(&fakeAuthClient{signInErr: errors.Unauthorized("bad", nil)}, &fakeUserRepo{})

	_, err := uc.Login(context.Background(), "x@example.com", "wrong")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestLoginReturnsProfile(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"uid-1": {ID: "uid-1", Email: "x@example.com"},
	}}
	uc := NewAuthUseCase(&fakeAuthClient{verifyUID: "uid-1"}, users)

	result, err := uc.Login(context.Background(), "x@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, "id-token", result.Token)
}
