package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/srhafid/BookApi/internal/models"
	"github.com/srhafid/BookApi/internal/repository"
	"github.com/srhafid/BookApi/pkg/utils"
)

// UserService orchestrates user CRUD. Not-found passes through; any
// other repository error is logged with its cause and re-signaled as
// ErrOperationFailed.
type UserService struct {
	repo   *repository.UserRepository
	audit  *AuditService
	logger *slog.Logger
}

func NewUserService(repo *repository.UserRepository, audit *AuditService, logger *slog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) Create(username, password, role, ip string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", "error", err)
		return nil, ErrOperationFailed
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(&user); err != nil {
		s.logger.Error("Error creating user", "username", username, "error", err)
		return nil, ErrOperationFailed
	}

	s.audit.LogAction(&user.ID, "CREATE_USER", user.Username, nil, ip)
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Error reading user", "id", id, "error", err)
		return nil, ErrOperationFailed
	}
	return user, nil
}

func (s *UserService) Update(id uint, fields map[string]interface{}, ip string) (bool, error) {
	updated, err := s.repo.Update(id, fields)
	if err != nil {
		s.logger.Error("Error updating user", "id", id, "error", err)
		return false, ErrOperationFailed
	}
	if updated {
		s.audit.LogAction(&id, "UPDATE_USER", fmt.Sprint(id), fields, ip)
	}
	return updated, nil
}

func (s *UserService) Delete(id uint, ip string) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("Error deleting user", "id", id, "error", err)
		return false, ErrOperationFailed
	}
	if deleted {
		s.audit.LogAction(&id, "DELETE_USER", fmt.Sprint(id), nil, ip)
	}
	return deleted, nil
}

// Authenticate checks credentials for login. Unknown usernames and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(username, password, ip string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Error reading user for login", "username", username, "error", err)
		return nil, ErrOperationFailed
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.audit.LogAction(nil, "LOGIN_FAILED", username, nil, ip)
		return nil, ErrInvalidCredentials
	}

	s.audit.LogAction(&user.ID, "LOGIN", user.Username, nil, ip)
	return user, nil
}
