package service

import (
	"context"
	"errors"
	"testing"

	"yarnhog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithProjectsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteFn              func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithProjects(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithProjectsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDWithProjectsFn: func(_ context.Context, id uint, _ int) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:          func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:              func(_ context.Context, _ *models.User) error { return nil },
		updateFn:              func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:              func(_ context.Context, _ uint) error { return nil },
	}
}

func TestUserService_CheckUsernameAvailability(t *testing.T) {
	t.Parallel()

	t.Run("available when no user holds the name", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), nil)
		available, err := svc.CheckUsernameAvailability(context.Background(), "hookbender")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("taken when a user holds the name", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 3, Username: username}, nil
		}
		svc := NewUserService(repo, nil)
		available, err := svc.CheckUsernameAvailability(context.Background(), "hookbender")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("malformed name is a validation error, not taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			t.Fatal("repo should not be queried for an invalid name")
			return nil, nil
		}
		svc := NewUserService(repo, nil)
		_, err := svc.CheckUsernameAvailability(context.Background(), "-bad-")
		assertValidationError(t, err)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db down")
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return nil, repoErr
		}
		svc := NewUserService(repo, nil)
		_, err := svc.CheckUsernameAvailability(context.Background(), "hookbender")
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("username change checks availability", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "old_name"}, nil
		}
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 9, Username: username}, nil
		}
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "taken_name"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("same username skips the availability check", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "same_name"}, nil
		}
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			t.Fatal("availability should not be checked for an unchanged name")
			return nil, nil
		}
		svc := NewUserService(repo, nil)
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "same_name"})
		require.NoError(t, err)
		assert.Equal(t, "same_name", user.Username)
	})

	t.Run("avatar bytes are re-encoded before storage", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		encode := func(_ []byte, _ uint) (string, error) {
			return "data:image/jpeg;base64,enc", nil
		}
		svc := NewUserService(repo, encode)
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      1,
			AvatarImage: []byte("raw png bytes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,enc", user.Avatar)
		require.NotNil(t, saved)
		assert.Equal(t, "data:image/jpeg;base64,enc", saved.Avatar)
	})

	t.Run("undecodable avatar is a validation error", func(t *testing.T) {
		t.Parallel()
		encode := func(_ []byte, _ uint) (string, error) {
			return "", errors.New("not an image")
		}
		svc := NewUserService(noopUserRepo(), encode)
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      1,
			AvatarImage: []byte{0x00},
		})
		assertValidationError(t, err)
	})
}
