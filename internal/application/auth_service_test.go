package application

import (
	"context"
	"errors"
	"testing"

	"github.com/travelog/backend/internal/domain/repository"
)

func newAuthService() *AuthService {
	return NewAuthService(newMemUserRepo(), nil, "", nil, nil)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@x.com", "password1", "Ann")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.ID == "" {
		t.Error("no id assigned")
	}
	if u.PasswordHash == "password1" {
		t.Error("password stored in plaintext")
	}

	got, err := svc.Authenticate(ctx, "a@x.com", "password1")
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("Authenticate() id = %q, want %q", got.ID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "password1", "Ann"); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	_, err := svc.Register(ctx, "a@x.com", "different9", "Someone Else")
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want ErrEmailTaken", err)
	}

	// The first account must still authenticate with its original password.
	if _, err := svc.Authenticate(ctx, "a@x.com", "password1"); err != nil {
		t.Errorf("original account damaged: %v", err)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "password1", "Ann"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	_, wrongPwd := svc.Authenticate(ctx, "a@x.com", "wrongpassword")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@x.com", "password1")

	if !errors.Is(wrongPwd, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPwd)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPwd.Error() != unknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPwd, unknownEmail)
	}
}

func TestUpdateProfileNormalizesEmptyToNull(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@x.com", "password1", "Ann")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{
		FullName:  "Ann Lee",
		Bio:       "travels a lot",
		AvatarURL: "https://example.com/a.png",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if updated.Bio == nil || *updated.Bio != "travels a lot" {
		t.Errorf("bio not stored: %v", updated.Bio)
	}
	if updated.AvatarURL == nil || *updated.AvatarURL != "https://example.com/a.png" {
		t.Errorf("avatar not stored: %v", updated.AvatarURL)
	}

	// Empty strings clear the optional fields instead of storing "".
	cleared, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{FullName: "Ann Lee"})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if cleared.Bio != nil {
		t.Errorf("bio = %q, want nil", *cleared.Bio)
	}
	if cleared.AvatarURL != nil {
		t.Errorf("avatarUrl = %q, want nil", *cleared.AvatarURL)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newAuthService()
	_, err := svc.UpdateProfile(context.Background(), "no-such-user", UpdateProfileInput{FullName: "Ann"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}

func TestUploadAvatarWithoutStorage(t *testing.T) {
	svc := newAuthService()
	_, err := svc.UploadAvatar(context.Background(), "someone", nil, "a.png", "image/png")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("UploadAvatar() error = %v, want ErrStorageUnavailable", err)
	}
}
