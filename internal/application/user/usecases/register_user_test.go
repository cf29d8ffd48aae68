package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbot/internal/domain/user"
	"deskbot/internal/shared/errors"
)

func TestRegisterUser(t *testing.T) {
	t.Run("creates user on first contact with detected language", func(t *testing.T) {
		var saved *user.User
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
			SaveFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return nil
			},
		}
		uc := NewRegisterUserUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			UserID: 42, Username: "alice", FirstName: "Alice", LanguageCode: "ru-RU",
		})

		require.NoError(t, err)
		assert.True(t, result.IsNew)
		require.NotNil(t, saved)
		assert.Equal(t, int64(42), saved.ID())
		assert.Equal(t, "ru", saved.Language())
	})

	t.Run("syncs changed profile on repeat contact", func(t *testing.T) {
		existing, err := user.NewUser(42, "alice_old", "Alice", "", "en")
		require.NoError(t, err)

		updated := false
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = true
				return nil
			},
		}
		uc := NewRegisterUserUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			UserID: 42, Username: "alice_new", FirstName: "Alice",
		})

		require.NoError(t, err)
		assert.False(t, result.IsNew)
		assert.True(t, updated)
		assert.Equal(t, "alice_new", result.User.Username())
	})

	t.Run("does not write when the profile is unchanged", func(t *testing.T) {
		existing, err := user.NewUser(42, "alice", "Alice", "", "en")
		require.NoError(t, err)

		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		uc := NewRegisterUserUseCase(repo, &mockLogger{})

		_, err = uc.Execute(context.Background(), RegisterUserCommand{
			UserID: 42, Username: "alice", FirstName: "Alice",
		})

		require.NoError(t, err)
	})

	t.Run("rejects zero user id", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), RegisterUserCommand{})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSyncProfiles(t *testing.T) {
	t.Run("updates changed profiles and counts unreadable ones", func(t *testing.T) {
		u1, _ := user.NewUser(1, "a_old", "A", "", "en")
		u2, _ := user.NewUser(2, "b", "B", "", "en")
		u3, _ := user.NewUser(3, "c", "C", "", "en")

		repo := &mockUserRepository{
			ListAllFunc: func(ctx context.Context) ([]*user.User, error) {
				return []*user.User{u1, u2, u3}, nil
			},
		}
		profiles := &mockProfileSource{
			GetChatProfileFunc: func(ctx context.Context, userID int64) (string, string, string, error) {
				switch userID {
				case 1:
					return "a_new", "A", "", nil
				case 2:
					return "b", "B", "", nil
				default:
					return "", "", "", errors.NewNotFoundError("chat gone")
				}
			},
		}
		uc := NewSyncProfilesUseCase(repo, profiles, &mockLogger{})

		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, result.Scanned)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, "a_new", u1.Username())
	})
}

func TestSetBanned(t *testing.T) {
	t.Run("toggles and persists the flag", func(t *testing.T) {
		u, _ := user.NewUser(42, "alice", "Alice", "", "en")
		updated := false
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
				return u, nil
			},
			UpdateFunc: func(ctx context.Context, got *user.User) error {
				updated = true
				return nil
			},
		}
		uc := NewSetBannedUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), SetBannedCommand{UserID: 42, Banned: true})

		require.NoError(t, err)
		assert.True(t, result.Banned)
		assert.True(t, updated)
	})

	t.Run("same flag is a no-op write", func(t *testing.T) {
		u, _ := user.NewUser(42, "alice", "Alice", "", "en")
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
				return u, nil
			},
			UpdateFunc: func(ctx context.Context, got *user.User) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		uc := NewSetBannedUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background(), SetBannedCommand{UserID: 42, Banned: false})

		require.NoError(t, err)
		assert.False(t, result.Banned)
	})
}
