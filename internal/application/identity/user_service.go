// Package identity implements the user account use cases.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agreements/backend/internal/domain/identity"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateUserRequest represents a request to register a new user
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin validator viewer"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=120"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=admin validator viewer"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse maps an aggregate to its response shape
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses maps a slice of aggregates to response shapes
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// UserService handles user account operations
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registers a new user. The email is the natural key; a second account
// with the same normalized address is rejected.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user := identity.NewUser(req.Name, req.Email, identity.Role(req.Role))

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("user", id)
		}
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByEmail retrieves a user by email, in any casing
func (s *UserService) GetByEmail(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with pagination
func (s *UserService) List(ctx context.Context, filter shared.Filter) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// Update changes the mutable fields of a user
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("user", id)
		}
		return nil, err
	}

	if req.Name != nil {
		user.Rename(*req.Name)
	}
	if req.Email != nil {
		previous := user.Email
		user.ChangeEmail(*req.Email)
		if user.Email != previous {
			if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
			} else if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		}
	}
	if req.Role != nil {
		user.ChangeRole(identity.Role(*req.Role))
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("user", id)
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
