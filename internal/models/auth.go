package models

import "github.com/golang-jwt/jwt/v5"

// UserRole represents the dashboard personas.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleTeacher    UserRole = "teacher"
	RoleGovernment UserRole = "government"
	RoleHRAdmin    UserRole = "hr_admin"
)

// Valid reports whether the role is one of the supported personas.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleGovernment, RoleHRAdmin:
		return true
	default:
		return false
	}
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}
