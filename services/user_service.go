package services

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultUserPage  = 1
	defaultUserLimit = 20
)

// UserList is a paginated page of users.
type UserList struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError)
	GetUser(ctx context.Context, id string) (*models.User, *ServiceError)
	ListUsers(ctx context.Context, page, limit int) (*UserList, *ServiceError)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, *ServiceError)
	DeleteUser(ctx context.Context, id string) *ServiceError
}

type userServiceImpl struct {
	repo   repository.UserRepo
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepo, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError) {
	var fields []models.FieldError
	if req.FirstName == "" {
		fields = append(fields, models.FieldError{Field: "firstName", Message: "is required"})
	}
	if req.LastName == "" {
		fields = append(fields, models.FieldError{Field: "lastName", Message: "is required"})
	}
	if req.Email == "" {
		fields = append(fields, models.FieldError{Field: "email", Message: "is required"})
	}
	if req.Password == "" {
		fields = append(fields, models.FieldError{Field: "password", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, validationError("First name, last name, email, and password are required.", fields...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, unexpected("Failed to create user.")
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		Address:   req.Address,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, badRequest("User with this email already exists.")
		}
		s.logger.Error("user create failed", zap.String("email", req.Email), zap.Error(err))
		return nil, unexpected("Failed to create user.")
	}

	s.logger.Info("user created", zap.String("user", user.ID.String()))
	return user, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, rawID string) (*models.User, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("User id is required.", fields...)
	}
	user, err := s.repo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, notFound("User not found")
	}
	if err != nil {
		s.logger.Error("user lookup failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve user.")
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, page, limit int) (*UserList, *ServiceError) {
	if page <= 0 {
		page = defaultUserPage
	}
	if limit <= 0 {
		limit = defaultUserLimit
	}
	users, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("user list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve users.")
	}
	return &UserList{Users: users, Total: total, Page: page, Limit: limit}, nil
}

// UpdateUser merges the supplied fields; a non-empty password is re-hashed
// before replacing the stored document.
func (s *userServiceImpl) UpdateUser(ctx context.Context, rawID string, req *models.UpdateUserRequest) (*models.User, *ServiceError) {
	user, svcErr := s.GetUser(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("password hash failed", zap.Error(err))
			return nil, unexpected("Failed to update user.")
		}
		user.Password = string(hash)
	}

	if err := s.repo.Replace(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, badRequest("User with this email already exists.")
		}
		s.logger.Error("user update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update user.")
	}
	return user, nil
}

// DeleteUser flags the account instead of removing the document, so reads
// stop returning it but history referencing the user stays intact.
func (s *userServiceImpl) DeleteUser(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("User id is required.", fields...)
	}
	err := s.repo.SoftDelete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("User not found")
	}
	if err != nil {
		s.logger.Error("user delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete user.")
	}
	return nil
}
