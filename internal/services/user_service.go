package services

import (
	"context"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// UserInput is the writable part of a user account.
type UserInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    *bool  `json:"is_active"`
}

type UserService struct {
	Users     UserStore
	RequestID string
}

func (s UserService) List(ctx context.Context, f repositories.ListFilter) ([]models.User, error) {
	return s.Users.List(ctx, f)
}

func (s UserService) Get(ctx context.Context, id int64) (models.User, error) {
	if err := requireID("user", id); err != nil {
		return models.User{}, err
	}
	return s.Users.GetByID(ctx, id)
}

func (s UserService) Create(ctx context.Context, in UserInput) (models.User, error) {
	u := models.User{
		Username:    in.Username,
		Email:       in.Email,
		IsStaff:     in.IsStaff,
		IsSuperuser: in.IsSuperuser,
		IsActive:    in.IsActive == nil || *in.IsActive,
	}
	u.Normalize()
	if err := u.Validate(); err != nil {
		return u, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return u, err
	}
	u.PasswordHash = hash
	out, err := s.Users.Create(ctx, u)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "user", "create", out.ID)
	return out, nil
}

// Update rewrites the account; an empty password keeps the current one.
func (s UserService) Update(ctx context.Context, actor domain.Actor, id int64, in UserInput) (models.User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return existing, err
	}
	u := existing
	u.Username = in.Username
	u.Email = in.Email
	u.IsStaff = in.IsStaff
	u.IsSuperuser = in.IsSuperuser
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.PasswordHash = ""
	u.Normalize()
	if err := u.Validate(); err != nil {
		return u, err
	}
	if actor.UserID == id && (!u.IsSuperuser || !u.IsActive) {
		return u, domain.ValidationError{Field: "is_superuser", Msg: "you cannot remove your own superuser access"}
	}
	if in.Password != "" {
		if u.PasswordHash, err = HashPassword(in.Password); err != nil {
			return u, err
		}
	}
	out, err := s.Users.Update(ctx, u)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "user", "update", id)
	return s.Users.GetByID(ctx, id)
}

func (s UserService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if err := requireID("user", id); err != nil {
		return err
	}
	if actor.UserID == id {
		return domain.ValidationError{Field: "id", Msg: "you cannot delete your own account"}
	}
	if err := s.Users.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "user", "delete", id)
	return nil
}
