package usecase

import (
	"context"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	FullName     string
	Phone        string
	BusinessName string
	RFC          string
	Clabe        string
	Address      *entity.Address
}

// UpdateProfile merges the provided fields into the stored profile. Email and
// role are immutable once the account exists.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.BusinessName != "" {
		user.BusinessName = input.BusinessName
	}
	if input.RFC != "" {
		user.RFC = input.RFC
	}
	if input.Clabe != "" {
		user.Clabe = input.Clabe
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
