package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/auth"
	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// UserService manages accounts. It is the only place a plaintext password
// is seen: CreateUser hashes it, and every user returned has it blanked.
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewUserService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{users: users, passwords: passwords, logger: logger}
}

// CreateUser validates u, applies the salary default, hashes the password
// and stores the record. Usernames are not checked for uniqueness.
func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.ID = ""

	if err := validateStruct(u); err != nil {
		return nil, err
	}
	if len(u.Password) > auth.MaxPasswordBytes {
		return nil, apperror.ValidationFailed("password",
			fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	if u.Salary == 0 {
		u.Salary = model.DefaultSalary
	}

	hash, err := s.passwords.Hash(u.Password)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	u.Password = hash

	if err := s.users.CreateUser(ctx, u); err != nil {
		s.logger.Error("failed to create user",
			slog.String("username", u.Username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("id", u.ID),
		slog.String("username", u.Username),
	)
	u.Password = ""
	return u, nil
}

func (s *UserService) FindAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// FindUserByID returns apperror.ErrNotFound for an unknown id.
func (s *UserService) FindUserByID(ctx context.Context, uid string) (*model.User, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

// DeleteUser does not cascade: tuits and edges that reference uid stay.
func (s *UserService) DeleteUser(ctx context.Context, uid string) (model.DeleteResult, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.users.DeleteUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to delete user", slog.String("id", uid), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("deleting user: %w", err)
	}
	s.logger.Info("user deleted", slog.String("id", uid), slog.Int64("deleted", n))
	return model.DeleteResult{DeletedCount: n}, nil
}

func (s *UserService) DeleteUsersByUsername(ctx context.Context, username string) (model.DeleteResult, error) {
	username, err := requireID("username", username)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.users.DeleteUsersByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to delete users", slog.String("username", username), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("deleting users by username: %w", err)
	}
	s.logger.Info("users deleted by username", slog.String("username", username), slog.Int64("deleted", n))
	return model.DeleteResult{DeletedCount: n}, nil
}
