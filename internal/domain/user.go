package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	FirstName      string
	LastName       string
	Email          string
	Role           Role
	TelegramChatID *int64
}

func (in CreateUserInput) Validate() error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	case strings.TrimSpace(in.LastName) == "":
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	case len(in.FirstName) > 150 || len(in.LastName) > 150:
		return fmt.Errorf("%w: names must be at most 150 characters", ErrValidation)
	case !strings.Contains(in.Email, "@"):
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	case in.Role != RoleHost && in.Role != RoleGuest:
		return fmt.Errorf("%w: role must be host or guest", ErrValidation)
	}
	return nil
}
