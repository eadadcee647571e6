package models

import (
	"time"

	"luggagebill/internal/domain"
)

// User is an admin account. Only staff may use the admin interface.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func (u User) Actor() domain.Actor {
	return domain.Actor{
		UserID:      u.ID,
		Username:    u.Username,
		IsStaff:     u.IsStaff || u.IsSuperuser,
		IsSuperuser: u.IsSuperuser,
	}
}

func (u *User) Normalize() {
	u.Username = normalize(u.Username)
	u.Email = normalize(u.Email)
}

func (u User) Validate() error {
	if err := requireText("username", u.Username, 150); err != nil {
		return err
	}
	if u.Email != "" {
		return ValidateEmail("email", u.Email)
	}
	return nil
}
