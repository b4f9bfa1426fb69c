package usecase

import (
	"context"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
	userRepo     repository.UserRepository
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient, userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
	}
}

type RegisterInput struct {
	Email        string
	Password     string
	FullName     string
	Phone        string
	Role         string
	BusinessName string
	RFC          string
	Clabe        string
	Address      entity.Address
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Role must be buyer or seller", nil)
	}
	if input.Role == entity.RoleSeller && (input.RFC == "" || input.Clabe == "") {
		return nil, errors.BadRequest("Sellers must provide RFC and CLABE", nil)
	}

	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.BadRequest("Email is already registered", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.BadRequest("Failed to create user account", err)
	}

	user := &entity.User{
		ID:           uid,
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		BusinessName: input.BusinessName,
		RFC:          input.RFC,
		Clabe:        input.Clabe,
		Address:      input.Address,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Account created but sign-in failed", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}
