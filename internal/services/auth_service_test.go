package services

import (
	"context"
	"testing"
	"time"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
)

func newAuthFixture(t *testing.T) (AuthService, fakeUsers, models.User) {
	t.Helper()
	users := newFakeUsers()
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	u, _ := users.Create(context.Background(), models.User{Username: "ada", PasswordHash: hash, IsStaff: true, IsActive: true})
	return AuthService{Users: users, Secret: []byte("test-secret"), TTL: time.Hour}, users, u
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _, u := newAuthFixture(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "ada", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" || res.User.ID != u.ID {
		t.Fatalf("unexpected login result: %+v", res)
	}

	actor, err := svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if actor.UserID != u.ID || !actor.IsStaff || actor.IsSuperuser {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()
	for _, tc := range []struct{ user, pass string }{
		{"ada", "wrong"},
		{"nobody", "secret"},
		{"", ""},
	} {
		if _, err := svc.Login(ctx, tc.user, tc.pass); !domain.IsUnauthorized(err) {
			t.Fatalf("%s/%s: expected unauthorized, got %v", tc.user, tc.pass, err)
		}
	}
}

func TestAuthenticateRejectsExpiredAndDisabled(t *testing.T) {
	svc, users, u := newAuthFixture(t)
	ctx := context.Background()

	issued := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return issued }
	token, _, err := svc.IssueToken(u)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	svc.Now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Authenticate(ctx, token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	svc.Now = func() time.Time { return issued.Add(time.Minute) }
	u.IsActive = false
	users.Update(ctx, u)
	if _, err := svc.Authenticate(ctx, token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected disabled user to be rejected, got %v", err)
	}

	other := AuthService{Users: users, Secret: []byte("other"), TTL: time.Hour, Now: svc.Now}
	if _, err := other.ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected signature mismatch to be rejected, got %v", err)
	}
}

func TestUserServiceGuardsOwnAccount(t *testing.T) {
	users := newFakeUsers()
	svc := UserService{Users: users}
	ctx := context.Background()

	admin, err := svc.Create(ctx, UserInput{Username: "admin", Password: "admin", IsStaff: true, IsSuperuser: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !admin.IsActive || admin.PasswordHash == "" || admin.PasswordHash == "admin" {
		t.Fatalf("unexpected user: %+v", admin)
	}
	actor := admin.Actor()

	if _, err := svc.Update(ctx, actor, admin.ID, UserInput{Username: "admin", IsStaff: true}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error when dropping own superuser flag, got %v", err)
	}
	if err := svc.Delete(ctx, actor, admin.ID); !domain.IsValidation(err) {
		t.Fatalf("expected validation error when deleting self, got %v", err)
	}

	updated, err := svc.Update(ctx, actor, admin.ID, UserInput{Username: "root", Email: "root@example.com", IsStaff: true, IsSuperuser: true})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Username != "root" || updated.PasswordHash != admin.PasswordHash {
		t.Fatalf("password must be kept when omitted: %+v", updated)
	}

	if _, err := svc.Create(ctx, UserInput{Username: "root", Password: "pass1"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate username, got %v", err)
	}
}
