package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
	"github.com/travelog/backend/pkg/helpers"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrStorageUnavailable = errors.New("avatar storage not configured")
)

const profileCacheTTL = 24 * time.Hour

// AuthService covers registration, credential verification and profile
// operations. Redis is a best-effort profile cache only; it is never consulted
// for session validity.
type AuthService struct {
	Repo      repository.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, GCS: gcs, GCSBucket: gcsBucket, Redis: rdb, Logger: logger}
}

func profileKey(userID string) string {
	return "user:profile:" + userID
}

// cachedProfile mirrors the user row minus the password hash, which must not
// leave the database boundary.
type cachedProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	AvatarURL *string   `json:"avatarUrl"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Register stores a new account with a bcrypt hash of the raw password.
// A duplicate email surfaces as repository.ErrEmailTaken and creates nothing.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash, FullName: fullName}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.cacheProfile(ctx, u)
	return u, nil
}

// Authenticate validates email/password without issuing a token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	s.cacheProfile(ctx, u)
	return u, nil
}

// GetProfile loads a user, trying the cache first.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if s.Redis != nil {
		var cached cachedProfile
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return &entity.User{
				ID:        cached.ID,
				Email:     cached.Email,
				FullName:  cached.FullName,
				AvatarURL: cached.AvatarURL,
				Bio:       cached.Bio,
				CreatedAt: cached.CreatedAt,
				UpdatedAt: cached.UpdatedAt,
			}, nil
		}
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.cacheProfile(ctx, u)
	return u, nil
}

type UpdateProfileInput struct {
	FullName  string
	Bio       string
	AvatarURL string
}

// UpdateProfile replaces the mutable profile fields. Empty-string bio and
// avatar normalize to NULL rather than being stored as "".
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.FullName = in.FullName
	u.Bio = nilIfEmpty(in.Bio)
	u.AvatarURL = nilIfEmpty(in.AvatarURL)
	if err := s.Repo.UpdateProfile(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.cacheProfile(ctx, u)
	return u, nil
}

// UploadAvatar stores the image in GCS and persists its public URL.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrStorageUnavailable
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return "", ErrUserNotFound
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = &url
	if err := s.Repo.UpdateProfile(ctx, u); err != nil {
		return "", err
	}
	s.cacheProfile(ctx, u)
	return url, nil
}

func (s *AuthService) cacheProfile(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	cached := cachedProfile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(u.ID), cached, profileCacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("profile cache write failed")
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
