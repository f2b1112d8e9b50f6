package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"healthtrack/internal/cache"
	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

const profileCacheTTL = time.Minute

// ProfileUpdate is a partial profile change. Nil fields are left untouched.
type ProfileUpdate struct {
	Email                    *string
	FirstName                *string
	LastName                 *string
	NotificationEmailEnabled *bool
	ThemePreference          *string
	CurrentPassword          *string
	NewPassword              *string
}

// ProfileService reads and updates the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (*model.User, error)
	Update(ctx context.Context, userID uint, in ProfileUpdate) (*model.User, error)
}

// profileCache is the part of *cache.Client the profile service uses.
type profileCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	AddJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

type profileService struct {
	users repository.UserRepository
	cache profileCache
}

// NewProfileService builds a ProfileService with repository and cache.
func NewProfileService(users repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{users: users, cache: cache}
}

func (s *profileService) cacheKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

func (s *profileService) Get(ctx context.Context, userID uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A concurrent Update may have cached a newer row since the miss.
	_ = s.cache.AddJSON(ctx, s.cacheKey(userID), user, profileCacheTTL)
	return user, nil
}

// Update applies in after the password and email checks pass; nothing is
// written when any check fails.
func (s *profileService) Update(ctx context.Context, userID uint, in ProfileUpdate) (*model.User, error) {
	changingPassword := in.NewPassword != nil && *in.NewPassword != ""
	if changingPassword && (in.CurrentPassword == nil || *in.CurrentPassword == "") {
		return nil, apperrors.ErrCurrentPasswordRequired
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := model.ProfilePatch{
		FirstName:                in.FirstName,
		LastName:                 in.LastName,
		NotificationEmailEnabled: in.NotificationEmailEnabled,
		ThemePreference:          in.ThemePreference,
	}

	if changingPassword {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*in.CurrentPassword)); err != nil {
			return nil, apperrors.ErrIncorrectPassword
		}
		hashed, err := hashPassword(*in.NewPassword)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hashed
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			taken, err := s.users.EmailTakenByOther(ctx, email, userID)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, apperrors.ErrEmailInUse
			}
		}
		patch.Email = &email
	}

	if patch.IsEmpty() {
		return nil, apperrors.ErrNoFieldsProvided
	}

	updated, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailInUse) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(userID), updated, profileCacheTTL)
	return updated, nil
}
