package service

import (
	"context"

	"yarnhog/internal/models"
	"yarnhog/internal/repository"
	"yarnhog/internal/validation"
)

// EncodeAvatarFunc turns raw uploaded image bytes into an inline data URI.
// The server wires it to the imaging pipeline with per-user format
// selection.
type EncodeAvatarFunc func(data []byte, userID uint) (string, error)

type UserService struct {
	userRepo     repository.UserRepository
	encodeAvatar EncodeAvatarFunc
}

type UpdateProfileInput struct {
	UserID      uint
	Username    string
	AvatarImage []byte
}

func NewUserService(userRepo repository.UserRepository, encodeAvatar EncodeAvatarFunc) *UserService {
	return &UserService{userRepo: userRepo, encodeAvatar: encodeAvatar}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserWithProjects(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithProjects(ctx, id, limit)
}

// CheckUsernameAvailability reports whether username is valid and unclaimed.
// A format error is returned as-is; a taken name is not an error.
func (s *UserService) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return false, models.NewValidationError(err.Error())
	}
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// UpdateProfile applies a partial profile update. A username change is
// re-validated and re-checked for availability; the unique constraint
// still backstops the race with a concurrent signup.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		available, err := s.CheckUsernameAvailability(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = in.Username
	}

	if len(in.AvatarImage) > 0 {
		if s.encodeAvatar == nil {
			return nil, models.NewValidationError("Avatar uploads are not available")
		}
		avatar, err := s.encodeAvatar(in.AvatarImage, in.UserID)
		if err != nil {
			return nil, models.NewValidationError("Avatar image could not be read")
		}
		user.Avatar = avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
