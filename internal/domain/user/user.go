package user

import (
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func IsKnownRole(role Role) bool {
	switch role {
	case RoleApplicant, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
