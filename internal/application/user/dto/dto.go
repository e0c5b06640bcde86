package dto

import (
	"time"

	"issuetracker/internal/domain/user"
)

// UserResponse is the public shape of a user. The password hash never
// leaves the identity layer.
type UserResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	DisplayName  string    `json:"display_name"`
	Capabilities []string  `json:"capabilities"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is embedded in project and ticket responses.
type UserSummary struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name().String(),
		LastName:     u.LastName().String(),
		DisplayName:  u.FullName(),
		Capabilities: u.Capabilities().Strings(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}

func ToUserSummary(u *user.User) UserSummary {
	return UserSummary{
		ID:          u.ID(),
		Email:       u.Email().String(),
		DisplayName: u.FullName(),
	}
}
