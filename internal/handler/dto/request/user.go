package request

import (
	"rentdesk/internal/domain/user"
	"rentdesk/internal/usecase"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r CreateUserRequest) ToParams() (usecase.UserParams, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return usecase.UserParams{}, err
	}
	return usecase.UserParams{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     role,
	}, nil
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (r UpdateUserRequest) ToParams() (usecase.UpdateUserParams, error) {
	params := usecase.UpdateUserParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Role != nil {
		role, err := user.NewRole(*r.Role)
		if err != nil {
			return usecase.UpdateUserParams{}, err
		}
		params.Role = &role
	}
	return params, nil
}
