package user

import (
	"context"
	"net/http"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/itacademy/dice-game-api/internal/apperrors"
	"github.com/itacademy/dice-game-api/internal/auth"
)

const bcryptCost = 14

// TokenIssuer is the part of the token service registration and login
// depend on.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uint, role auth.Role) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a player account. New accounts always get the
// player role; admins only exist through seeding.
func (s *Service) Register(req RegisterRequest) (*User, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "The email must be a valid email address.", err)
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "The password must be at least 6 characters.", nil)
	}

	name := req.Name
	if name == "" {
		name = DefaultName
	}
	if len(name) > 255 {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "The name may not be greater than 255 characters.", nil)
	}

	existing, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "The email has already been taken.", nil)
	}

	existing, err = s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "The name has already been taken.", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error hashing password", err)
	}

	newUser := &User{
		Name:     name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     auth.RolePlayer,
	}
	if err := s.repo.Create(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Login checks the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Unauthorized", err)
	}
	return s.tokens.Issue(ctx, u.ID, u.Role)
}

// UpdateName renames the target user. Only the user themselves may do
// it; a failed uniqueness check leaves the prior name untouched.
func (s *Service) UpdateName(p *auth.Principal, targetID uint, name string) (string, error) {
	if err := auth.Authorize(p, auth.ActionUpdateName, targetID); err != nil {
		return "", err
	}
	if name == "" || len(name) > 255 {
		return "", apperrors.NewAppError(http.StatusUnprocessableEntity, "The name must be a string between 1 and 255 characters.", nil)
	}

	target, err := s.repo.FindByID(targetID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", apperrors.NewAppError(http.StatusNotFound, "User not found.", nil)
	}

	holder, err := s.repo.FindByName(name)
	if err != nil {
		return "", err
	}
	if holder != nil && holder.ID != targetID {
		return "", apperrors.NewAppError(http.StatusUnprocessableEntity, "The name has already been taken.", nil)
	}

	if err := s.repo.UpdateName(targetID, name); err != nil {
		return "", err
	}
	return name, nil
}
