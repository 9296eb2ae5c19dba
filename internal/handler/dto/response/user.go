package response

import (
	"time"

	"rentdesk/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u *user.User) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, u)
	resp.Role = u.Role.String()
	return resp
}

func FromUsers(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
