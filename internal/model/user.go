package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Mobile       string     `json:"mobile"`
	Address      string     `json:"address"`
	PasswordHash string     `json:"-"` // Do not expose password hash in JSON responses
	Role         string     `json:"role"`
	DOB          *time.Time `json:"dob,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,max=100"`
	Mobile   string `json:"mobile" binding:"required,max=20"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupUser is the public view returned after signup
type SignupUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// LoginUser is the public view returned after login
type LoginUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// Profile is the public view returned by GET /profile
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse pairs an identity token with a public user view
type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}
