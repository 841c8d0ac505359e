package model

import "time"

// User represents a user in the database. PasswordHash never leaves the
// auth layer; API responses use UserResponse.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse bundles a session token with the safe user record. The token
// travels in an HttpOnly cookie; only the user object is written to the body.
type AuthResponse struct {
	Token string
	User  UserResponse
}
