package models

import "time"

const (
	RolePlayer = "player"
	RoleCoach  = "coach"
)

type User struct {
	ID           int64     `json:"id"`
	Username     *string   `json:"username"`
	Email        *string   `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     *string   `json:"full_name"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RolePlayer || role == RoleCoach
}
