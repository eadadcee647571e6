package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/utils"
)

// Claims carried by access tokens.
type Claims struct {
	Username  string `json:"username"`
	Staff     bool   `json:"staff"`
	Superuser bool   `json:"superuser"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users     UserStore
	Secret    []byte
	TTL       time.Duration
	Now       func() time.Time
	RequestID string
}

// LoginResult is returned to a client after a successful login.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid username or password"}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func HashPassword(password string) (string, error) {
	if len(password) < 4 {
		return "", domain.ValidationError{Field: "password", Msg: "must be at least 4 characters"}
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Login checks the credentials of an active user and issues a token.
func (s AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, errBadCredentials
	}
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, errBadCredentials
	}
	if !u.IsActive {
		return LoginResult{}, domain.UnauthorizedError{Msg: "account is disabled"}
	}
	token, exp, err := s.IssueToken(u)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+idStr(u.ID))
	return LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s AuthService) IssueToken(u models.User) (string, time.Time, error) {
	if len(s.Secret) == 0 {
		return "", time.Time{}, domain.InternalError{Msg: "token secret not configured"}
	}
	now := s.now()
	exp := now.Add(s.TTL)
	claims := Claims{
		Username:  u.Username,
		Staff:     u.IsStaff || u.IsSuperuser,
		Superuser: u.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (s AuthService) ParseToken(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, domain.UnauthorizedError{Msg: "token expired"}
		}
		return claims, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return claims, nil
}

// Authenticate resolves a token to the acting user. The user is reloaded so
// deactivated or demoted accounts lose access before their token expires.
func (s AuthService) Authenticate(ctx context.Context, tokenString string) (domain.Actor, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return domain.Actor{}, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Actor{}, domain.UnauthorizedError{Msg: "invalid token subject"}
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Actor{}, domain.UnauthorizedError{Msg: "unknown user"}
		}
		return domain.Actor{}, err
	}
	if !u.IsActive {
		return domain.Actor{}, domain.UnauthorizedError{Msg: "account is disabled"}
	}
	return u.Actor(), nil
}
